package service

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/utils"
)

// UploadService 负责上传文件的校验：数量、大小、格式。
type UploadService struct{}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// MaxFileBytes 单文件大小上限（字节）。
func (s *UploadService) MaxFileBytes() int64 {
	maxMB := config.Get().Upload.MaxFileSizeMB
	if maxMB <= 0 {
		maxMB = 5
	}
	return int64(maxMB) * 1024 * 1024
}

// MaxFilesPerUpload 单次上传的文件数量上限。
func (s *UploadService) MaxFilesPerUpload() int {
	maxFiles := config.Get().Upload.MaxFilesUpload
	if maxFiles <= 0 {
		maxFiles = 10
	}
	return maxFiles
}

// ValidateBatch 校验一批上传文件的数量。
func (s *UploadService) ValidateBatch(files []*multipart.FileHeader) error {
	if len(files) == 0 {
		return common.NewValidationError("Aucune image fournie")
	}
	if maxFiles := s.MaxFilesPerUpload(); len(files) > maxFiles {
		return common.NewValidationError(fmt.Sprintf("Vous ne pouvez pas envoyer plus de %d images à la fois", maxFiles))
	}
	return nil
}

// ValidateImageFile 校验单个文件：扩展名、大小与真实内容。
// 返回规范化的扩展名供存储层使用。
func (s *UploadService) ValidateImageFile(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return ext, common.NewValidationError("Le format de l'image n'est pas autorisé. Formats autorisés : JPEG, PNG, WebP")
	}

	if maxBytes := s.MaxFileBytes(); file.Size > maxBytes {
		return ext, common.NewValidationError(fmt.Sprintf("La taille de l'image ne doit pas dépasser %dMB", maxBytes/(1024*1024)))
	}

	src, err := file.Open()
	if err != nil {
		return ext, common.NewInternalError("Impossible de lire le fichier envoyé")
	}
	defer func() { _ = src.Close() }()

	if ok, msg := utils.ValidateImageContent(src, ext); !ok {
		return ext, common.NewValidationError(msg)
	}

	return ext, nil
}
