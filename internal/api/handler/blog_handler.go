package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/justicebuddy/backend/internal/core/ports"
)

// BlogHandler handles HTTP requests for blog post operations. Listing is
// public; writes require the Auth middleware.
type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

// List handles GET /api/blogs — public, newest-first.
//
// @Summary      List all blog posts
// @Tags         blogs
// @Produce      json
// @Success      200  {array}   domain.BlogPost
// @Failure      500  {object}  messageResponse
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Create handles POST /api/blogs. The author is taken from the verified
// token identity, never from the request body.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      blogRequest  true  "Post title and content"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	username, err := ctxUsername(c)
	if err != nil {
		return err
	}

	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), req.Title, req.Content, username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// Update handles PUT /api/blogs/:id. Any authenticated admin may edit any
// post; authorship is not an edit precondition.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      blogRequest  true  "New title and content"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	var req blogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), req.Title, req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/blogs/:id.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Blog deleted successfully"})
}
