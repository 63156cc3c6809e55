package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// PostHandler handles the generated posts nested under a save.
type PostHandler struct {
	postService core.PostService
	errs        errorResponder
}

func NewPostHandler(ps core.PostService, errs errorResponder) *PostHandler {
	return &PostHandler{postService: ps, errs: errs}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	posts, err := h.postService.ListPosts(c.Request.Context(), userID, c.Param("saveId"))
	if err != nil {
		h.errs.respond(c, err, "Failed to get posts")
		return
	}
	respondData(c, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	post, err := h.postService.GetPost(c.Request.Context(), userID, c.Param("saveId"), c.Param("postId"))
	if err != nil {
		h.errs.respond(c, err, "Failed to get post")
		return
	}
	respondData(c, http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.CreatePostRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	post, err := h.postService.CreatePost(c.Request.Context(), userID, c.Param("saveId"), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to create post")
		return
	}
	respondData(c, http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.UpdatePostRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	post, err := h.postService.UpdatePost(c.Request.Context(), userID, c.Param("saveId"), c.Param("postId"), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to update post")
		return
	}
	respondData(c, http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.postService.DeletePost(c.Request.Context(), userID, c.Param("saveId"), c.Param("postId")); err != nil {
		h.errs.respond(c, err, "Failed to delete post")
		return
	}
	respondMessage(c, http.StatusOK, "Post deleted successfully")
}
