package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shoply/server/middleware"
	"github.com/shoply/server/models"
	"github.com/shoply/server/store"
	"github.com/shoply/server/utils"
)

// PostController manages the storefront post feed.
type PostController struct {
	posts *store.PostStore
}

// NewPostController creates a new PostController instance.
func NewPostController(posts *store.PostStore) *PostController {
	return &PostController{posts: posts}
}

// CreatePost allows authenticated users to publish a new post.
func (p *PostController) CreatePost(ctx *gin.Context) {
	userID, ok := getUserID(ctx)
	if !ok {
		utils.Error(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}
	userName, _ := ctx.Get(middleware.ContextUserNameKey)
	author, _ := userName.(string)

	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, "Title, content, and category are required")
		return
	}

	title := utils.Sanitize(strings.TrimSpace(req.Title))
	content := utils.Sanitize(strings.TrimSpace(req.Content))
	category := strings.TrimSpace(req.Category)

	if title == "" || content == "" || category == "" {
		utils.Error(ctx, http.StatusBadRequest, "Title, content, and category are required")
		return
	}

	if !models.IsValidCategory(category) {
		utils.Error(ctx, http.StatusBadRequest, "Invalid category")
		return
	}

	post := p.posts.Create(title, content, category, author, userID)

	utils.Success(ctx, http.StatusCreated, gin.H{
		"message": "Post created successfully",
		"post":    post,
	})
}

// ListPosts returns every post, newest first.
func (p *PostController) ListPosts(ctx *gin.Context) {
	utils.Success(ctx, http.StatusOK, gin.H{
		"posts": p.posts.List(),
	})
}
