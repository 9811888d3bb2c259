package stub

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) registerCategoryRoutes(r *gin.Engine) {
	r.GET("/categories/", s.listCategories)
	r.POST("/categories/", s.createCategory)
}

func (s *Server) listCategories(c *gin.Context) {
	var categories []Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (s *Server) createCategory(c *gin.Context) {
	var editable struct {
		Name string `json:"name"`
	}
	if !bindJSON(c, &editable) {
		return
	}

	editable.Name = strings.TrimSpace(editable.Name)
	if editable.Name == "" {
		fieldError(c, "name", "This field may not be blank.")
		return
	}

	var count int64
	s.db.Model(&Category{}).Where("name = ?", editable.Name).Count(&count)
	if count > 0 {
		fieldError(c, "name", "category with this name already exists.")
		return
	}

	category := Category{Name: editable.Name}
	if err := s.db.Create(&category).Error; err != nil {
		detail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusCreated, category)
}
