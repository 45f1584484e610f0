package productcontroller

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// uploadRoot returns the base directory for uploaded images.
func uploadRoot() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "/var/www/homeline/uploads"
}

// saveImage stores an uploaded file under uploads/<subdir> with a unique,
// cleaned filename and returns the public path clients use.
func saveImage(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	saveDir := filepath.Join(uploadRoot(), subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload folder: %w", err)
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return fmt.Sprintf("/uploads/%s/%s", subdir, filename), nil
}

// removeImage deletes a previously uploaded file given its public path.
func removeImage(publicPath string) {
	if publicPath == "" {
		return
	}
	local := filepath.Join(uploadRoot(), strings.TrimPrefix(publicPath, "/uploads/"))
	_ = os.Remove(local)
}
