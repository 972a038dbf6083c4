package v1

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seoulyoojin-design/finance-ai-agent/internal/config"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/model"
	"github.com/seoulyoojin-design/finance-ai-agent/internal/service/parser"
)

// uploadErrorTemplate 上传失败时返回给用户的完整指引文案
const uploadErrorTemplate = `파일 업로드에 실패했습니다. 다음 주의사항을 확인해주세요:

1.  **파일 형식**: ` + "`CSV`" + ` 또는 ` + "`Excel`" + ` 파일만 지원됩니다.
2.  **필수 컬럼**:
    - **'항목' 컬럼**: 재무 계정 이름(예: '현금', '매출액')이 포함된 '항목' 컬럼이 반드시 있어야 합니다.
    - **'연도' 컬럼**: API에 입력한 회계연도(예: %d)와 동일한 이름의 컬럼이 파일에 있어야 합니다.

**오류 원인**: %s
`

// Upload 上传财务报表文件并标准化入库
// POST /api/projects/upload
//
// multipart 字段：file、fiscal_year、statement_type，可选 project_id
// （传入已有项目 ID 时把另一张报表并入同一项目）
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "업로드 파일을 찾을 수 없습니다."})
		return
	}

	fiscalYear, err := strconv.Atoi(c.PostForm("fiscal_year"))
	if err != nil || fiscalYear <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "회계연도가 올바르지 않습니다."})
		return
	}

	statementType := model.StatementType(c.PostForm("statement_type"))
	if !statementType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "재무제표 종류(BS/IS/CFS)가 올바르지 않습니다."})
		return
	}

	userID := currentUserID(c)

	// 可选：并入已有项目（需要所有权）
	projectID := c.PostForm("project_id")
	existing := false
	if projectID != "" {
		project, err := h.store.GetProject(projectID)
		if err != nil || project.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "접근 권한이 없습니다."})
			return
		}
		existing = true
	} else {
		projectID = uuid.New().String()
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일을 읽을 수 없습니다."})
		return
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "파일을 읽을 수 없습니다."})
		return
	}

	rows, err := parser.ParseFile(fileHeader.Filename, bytes.NewReader(content), fiscalYear)
	if err != nil {
		var ve *parser.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf(uploadErrorTemplate, fiscalYear, ve.Message),
				"kind":  ve.Kind,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 原始文件以内容哈希归档
	hash := sha256.Sum256(content)
	fileHash := hex.EncodeToString(hash[:])
	if h.cfg != nil {
		archivePath := config.GetDataPath(h.cfg, "uploads", fileHash)
		if err := os.WriteFile(archivePath, content, 0644); err != nil {
			// 归档失败不阻断入库
			log.Printf("archive upload failed: %v", err)
		}
	}

	if !existing {
		err = h.store.CreateProject(&model.Project{
			ProjectID:  projectID,
			UserID:     userID,
			FiscalYear: fiscalYear,
			Status:     model.StatusUploaded,
			UploadDate: time.Now(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	items := make([]*model.LineItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &model.LineItem{
			ProjectID:     projectID,
			StatementType: statementType,
			Account:       row.Account,
			Period:        fiscalYear,
			Amount:        row.Amount,
		})
	}
	if err := h.store.BatchInsertLineItems(items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.store.CreateUploadLog(projectID, fileHeader.Filename, fileHeader.Size, fileHash, statementType, fiscalYear, "success"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project_id": projectID,
		"status":     model.StatusUploaded,
		"message":    "파일 업로드 및 표준화 완료. 분석을 시작해주세요.",
	})
}
