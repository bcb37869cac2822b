package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const homeHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>CollaBand</title>
</head>
<body>
    <div id="root">CollaBand &mdash; make music together.</div>
</body>
</html>
`

// PageController serves the static pages. No business logic lives here.
type PageController struct{}

// NewPageController creates a new PageController.
func NewPageController() *PageController {
	return &PageController{}
}

// Home renders the landing page.
func (pc *PageController) Home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homeHTML))
}

// Empty answers with a bare 200 for the contact and user-settings pages.
func (pc *PageController) Empty(c *gin.Context) {
	c.Status(http.StatusOK)
}
