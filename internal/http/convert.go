package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/outline"
)

const (
	maxClippingsFileSize = 10 * 1024 * 1024 // 10 MB
)

// ConvertController serves outline conversion over HTTP: a clippings
// file upload in, an org document out.
type ConvertController struct {
	defaults outline.Options
}

func NewConvertController(cfg *config.Config) *ConvertController {
	return &ConvertController{
		defaults: outline.Options{
			IncludeDate:     cfg.Outline.IncludeDate,
			IncludePDFLinks: cfg.Outline.IncludePDFLinks,
			PDFFolder:       cfg.Outline.PDFFolder,
		},
	}
}

type ConvertResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Titles  int    `json:"titles"`
	Entries int    `json:"entries"`
	Outline string `json:"outline,omitempty"`
}

// options derives render options from query parameters, falling back to
// the configured defaults.
func (c *ConvertController) options(ctx *gin.Context) outline.Options {
	opts := c.defaults
	if v, ok := ctx.GetQuery("include_date"); ok {
		opts.IncludeDate = v == "true" || v == "1"
	}
	if v, ok := ctx.GetQuery("include_pdf_links"); ok {
		opts.IncludePDFLinks = v == "true" || v == "1"
	}
	if v, ok := ctx.GetQuery("pdf_folder"); ok {
		opts.PDFFolder = v
	}
	return opts
}

func (c *ConvertController) parseUpload(ctx *gin.Context) (*outline.Collection, error) {
	file, header, err := ctx.Request.FormFile("clippings_file")
	if err != nil {
		return nil, fmt.Errorf("clippings file not provided")
	}
	defer file.Close()

	if header.Size > maxClippingsFileSize {
		return nil, fmt.Errorf("file too large (max %d MB)", maxClippingsFileSize/(1024*1024))
	}

	limitedReader := io.LimitReader(file, maxClippingsFileSize+1)

	entries, err := clippings.NewParser().Parse(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clippings: %w", err)
	}

	return outline.Group(entries), nil
}

// Convert responds with the rendered org document as plain text.
func (c *ConvertController) Convert(ctx *gin.Context) {
	collection, err := c.parseUpload(ctx)
	if err != nil {
		ctx.String(http.StatusBadRequest, "%v\n", err)
		return
	}

	ctx.String(http.StatusOK, "%s", outline.Render(collection, c.options(ctx)))
}

// ConvertJSON responds with the rendered document plus counts.
func (c *ConvertController) ConvertJSON(ctx *gin.Context) {
	collection, err := c.parseUpload(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, &ConvertResult{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, &ConvertResult{
		Success: true,
		Titles:  collection.Len(),
		Entries: collection.EntryCount(),
		Outline: outline.Render(collection, c.options(ctx)),
	})
}
