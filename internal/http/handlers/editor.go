package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-true/mm-shop-admin/internal/editor"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/middleware"
	"github.com/Muhammad-true/mm-shop-admin/internal/http/render"
	"github.com/Muhammad-true/mm-shop-admin/internal/shared/apperr"
	"github.com/Muhammad-true/mm-shop-admin/internal/uploader"
	"github.com/Muhammad-true/mm-shop-admin/internal/views/products"
	"github.com/Muhammad-true/mm-shop-admin/pkg/view"
)

type EditorHandler struct {
	session  *editor.EditSession
	products *products.Controller
	uploader uploader.Uploader
}

func NewEditorHandler(s *editor.EditSession, p *products.Controller, up uploader.Uploader) *EditorHandler {
	return &EditorHandler{session: s, products: p, uploader: up}
}

// Open starts an edit flow: empty for "new", seeded from the cached
// product when a productId is given.
func (h *EditorHandler) Open(c *gin.Context) {
	var in struct {
		ProductID string `json:"productId"`
	}
	_ = c.ShouldBindJSON(&in)

	if in.ProductID == "" {
		h.session.Open(nil)
		render.OK(c, h.state())
		return
	}

	p, ok := h.products.Get(in.ProductID)
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Product not found in the current list."))
		return
	}
	h.session.Open(&p)
	render.OK(c, h.state())
}

func (h *EditorHandler) Close(c *gin.Context) {
	h.session.Close()
	render.OK(c, gin.H{"open": false})
}

func (h *EditorHandler) AddVariation(c *gin.Context) {
	if !h.session.IsOpen() {
		middleware.Fail(c, apperr.InvalidErr("No edit session is open.", nil))
		return
	}
	localID := h.session.AddVariation()
	render.OK(c, gin.H{"localId": localID, "editor": h.state()})
}

func (h *EditorHandler) RemoveVariation(c *gin.Context) {
	idx, err := variationIndex(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	if err := h.session.RemoveVariation(idx); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("No variation at that index."))
		return
	}
	render.OK(c, h.state())
}

// UpdateVariation covers both scalar fields and the set-valued sizes and
// colors; the latter carry an "included" flag.
func (h *EditorHandler) UpdateVariation(c *gin.Context) {
	idx, err := variationIndex(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	var in struct {
		Field    string `json:"field" binding:"required"`
		Value    any    `json:"value"`
		Included *bool  `json:"included"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("field and value are required.", nil))
		return
	}

	if in.Field == editor.FieldSizes || in.Field == editor.FieldColors {
		val, ok := in.Value.(string)
		if !ok || in.Included == nil {
			middleware.Fail(c, apperr.InvalidErr("Set fields need a string value and an included flag.", nil))
			return
		}
		if err := h.session.UpdateMultiField(idx, in.Field, val, *in.Included); err != nil {
			middleware.Fail(c, apperr.InvalidErr(err.Error(), nil))
			return
		}
	} else if err := h.session.UpdateField(idx, in.Field, in.Value); err != nil {
		middleware.Fail(c, apperr.InvalidErr(err.Error(), nil))
		return
	}

	render.OK(c, h.state())
}

// UploadImages accepts a multipart form with any number of files. Files
// upload independently; the response reports each one and the list of
// URLs that stuck.
func (h *EditorHandler) UploadImages(c *gin.Context) {
	idx, err := variationIndex(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Expected a multipart form with files.", nil))
		return
	}
	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 {
		middleware.Fail(c, apperr.InvalidErr("No files supplied.", nil))
		return
	}

	files := make([]editor.FileInput, 0, len(fileHeaders))
	opened := make([]interface{ Close() error }, 0, len(fileHeaders))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
		opened = append(opened, f)
		files = append(files, editor.FileInput{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}

	results, err := h.session.UploadImages(c.Request.Context(), h.uploader, idx, files)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	out := make([]gin.H, 0, len(results))
	failed := 0
	for _, r := range results {
		item := gin.H{"filename": r.Filename, "url": r.URL}
		if r.Err != nil {
			item["error"] = apperr.PublicMessage(r.Err)
			failed++
		}
		out = append(out, item)
	}

	kind := view.FlashSuccess
	msg := "Images uploaded."
	if failed == len(results) {
		kind = view.FlashError
		msg = "All uploads failed."
	} else if failed > 0 {
		kind = view.FlashWarning
		msg = "Some uploads failed."
	}
	render.Toast(c, gin.H{"results": out, "editor": h.state()}, kind, msg)
}

func (h *EditorHandler) RemoveImage(c *gin.Context) {
	idx, err := variationIndex(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var in struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image url is required.", nil))
		return
	}
	if err := h.session.RemoveImage(idx, in.URL); err != nil {
		middleware.Fail(c, apperr.NotFoundErr("No variation at that index."))
		return
	}
	render.OK(c, h.state())
}

// Submit validates the whole form fail-complete, then performs the one
// bulk create/update and closes the session. Validation failures list
// every violated field and nothing reaches the API.
func (h *EditorHandler) Submit(c *gin.Context) {
	if !h.session.IsOpen() {
		middleware.Fail(c, apperr.InvalidErr("No edit session is open.", nil))
		return
	}

	var in struct {
		Form editor.Form `json:"form"`
	}
	if err := c.ShouldBindJSON(&in); err == nil {
		h.session.SetForm(in.Form)
	}

	if err := h.session.Validate(); err != nil {
		middleware.Fail(c, err)
		return
	}

	payload := h.session.Payload()
	ctx := c.Request.Context()
	var err error
	if id := h.session.ProductID(); id != "" {
		err = h.products.Update(ctx, id, payload)
	} else {
		err = h.products.Create(ctx, payload)
	}
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	h.session.Close()
	render.Toast(c, view.ProductList(h.ctrlVisible(), ""), view.FlashSuccess, "Product saved.")
}

func (h *EditorHandler) ctrlVisible() []products.Product {
	return h.products.Visible()
}

func (h *EditorHandler) state() gin.H {
	return gin.H{
		"open":       h.session.IsOpen(),
		"productId":  h.session.ProductID(),
		"form":       h.session.Form(),
		"variations": h.session.Variations(),
	}
}

func variationIndex(c *gin.Context) (int, error) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil || idx < 0 {
		return 0, apperr.InvalidErr("Variation index must be a non-negative integer.", nil)
	}
	return idx, nil
}
