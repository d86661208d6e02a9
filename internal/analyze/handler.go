package analyze

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"smartrecruit-backend/internal/extract"
	"smartrecruit-backend/internal/recommend"
	"smartrecruit-backend/internal/shared/server/middleware"
	"smartrecruit-backend/internal/shared/server/respond"
	"smartrecruit-backend/internal/shared/telemetry"
	"smartrecruit-backend/internal/shared/util"
)

// Handler serves the upload form, the HTML analysis flow, and the JSON API.
type Handler struct {
	recommender    *recommend.Recommender
	maxUploadBytes int64
}

// NewHandler constructs an analysis handler.
func NewHandler(recommender *recommend.Recommender, maxUploadBytes int64) *Handler {
	return &Handler{
		recommender:    recommender,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes registers the HTML-facing routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.index)
	r.POST("/analyze", h.analyze)
}

// RegisterAPIRoutes registers the JSON API routes on the given group.
func (h *Handler) RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommendations)
}

func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// analyze runs the upload through extract -> recommend -> render. Extraction
// problems re-render the upload form with a message; the recommender itself
// never fails the request.
func (h *Handler) analyze(c *gin.Context) {
	text, fileName, failStatus, failMsg := h.extractUpload(c)
	if failStatus != 0 {
		c.HTML(failStatus, "index.html", gin.H{"Error": failMsg})
		return
	}

	result := h.recommend(c, text, fileName)
	c.HTML(http.StatusOK, "result.html", gin.H{
		"Filename": fileName,
		"Result":   result,
	})
}

// recommendations is the JSON counterpart of analyze.
func (h *Handler) recommendations(c *gin.Context) {
	text, fileName, failStatus, failMsg := h.extractUpload(c)
	if failStatus != 0 {
		code := "validation_error"
		switch failMsg {
		case msgUnsupported:
			code = "unsupported_format"
		case msgExtractionFailed, msgEmptyText:
			code = "extraction_failed"
		}
		respond.Error(c, failStatus, code, failMsg, nil)
		return
	}

	result := h.recommend(c, text, fileName)
	respond.OK(c, gin.H{
		"fileName":      fileName,
		"suggestions":   result.Suggestions,
		"source":        result.Source,
		"matchedSkills": result.MatchedSkills,
	})
}

const (
	msgMissingFile      = "Choose a resume file to upload."
	msgTooLarge         = "File is too large. The limit is 5 MB."
	msgUnsupported      = "Unsupported file type. Upload a PDF, DOCX, or TXT resume."
	msgExtractionFailed = "Could not extract text from the file. Try a PDF or DOCX."
	msgEmptyText        = "The file contained no readable text. Try a PDF or DOCX."
	msgReadFailed       = "Could not read the uploaded file."
)

// extractUpload validates the multipart upload and returns the extracted
// resume text. A non-zero status signals a failure to report to the caller.
func (h *Handler) extractUpload(c *gin.Context) (text, fileName string, failStatus int, failMsg string) {
	file, err := c.FormFile("file")
	if err != nil {
		return "", "", http.StatusBadRequest, msgMissingFile
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		return "", "", http.StatusBadRequest, msgTooLarge
	}

	fileName, err = util.SanitizeFileName(file.Filename)
	if err != nil {
		return "", "", http.StatusBadRequest, msgUnsupported
	}

	format, err := extract.FormatFromFileName(fileName)
	if err != nil {
		return "", "", http.StatusBadRequest, msgUnsupported
	}

	src, err := file.Open()
	if err != nil {
		return "", "", http.StatusInternalServerError, msgReadFailed
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", http.StatusInternalServerError, msgReadFailed
	}

	text, err = extract.Text(data, format)
	if err != nil {
		telemetry.Error("analyze.extract_failed", map[string]any{
			"request_id": middleware.RequestIDFromContext(c),
			"file":       fileName,
			"format":     string(format),
			"err":        err.Error(),
		})
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			return "", "", http.StatusBadRequest, msgUnsupported
		}
		return "", "", http.StatusBadRequest, msgExtractionFailed
	}
	if text == "" {
		return "", "", http.StatusBadRequest, msgEmptyText
	}

	return text, fileName, 0, ""
}

func (h *Handler) recommend(c *gin.Context, text, fileName string) recommend.Result {
	result := h.recommender.Recommend(c.Request.Context(), text)
	c.Set("recommendationSource", string(result.Source))
	telemetry.Info("analyze.complete", map[string]any{
		"request_id":  middleware.RequestIDFromContext(c),
		"file":        fileName,
		"source":      string(result.Source),
		"suggestions": len(result.Suggestions),
	})
	return result
}
