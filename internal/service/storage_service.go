package service

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/config"
	"github.com/Hamziss/agence-immobliere/internal/utils"
	"github.com/google/uuid"
)

// StorageService 本地磁盘文件存储。
// 存储路径形如 properties/<property_id>/<uuid><ext>，相对于上传根目录。
type StorageService struct{}

func (s *StorageService) uploadRoot() (string, error) {
	root := config.Get().Upload.Path
	if root == "" {
		root = "storage"
	}
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return "", common.NewInternalError("Erreur système : répertoire de stockage introuvable")
	}
	// 根目录本身不能是符号链接，防止指向外部路径。
	if err := utils.EnsurePathNotSymlink(rootAbs); err != nil {
		log.Printf("Upload root security check failed: %v\n", err)
		return "", common.NewInternalError("Erreur système : répertoire de stockage non sécurisé")
	}
	return rootAbs, nil
}

// SaveUpload 保存上传文件，返回相对存储路径。
func (s *StorageService) SaveUpload(file *multipart.FileHeader, propertyID uint, ext string) (string, error) {
	rootAbs, err := s.uploadRoot()
	if err != nil {
		return "", err
	}

	dirRel := filepath.Join("properties", fmt.Sprintf("%d", propertyID))
	fullDir, err := utils.SecureJoin(rootAbs, dirRel)
	if err != nil {
		log.Printf("SecureJoin dir error: %v\n", err)
		return "", common.NewInternalError("Erreur système : répertoire de stockage invalide")
	}

	if err := os.MkdirAll(fullDir, 0755); err != nil {
		log.Printf("MkdirAll error: %v\n", err)
		return "", common.NewInternalError("Erreur système : impossible de créer le répertoire de stockage")
	}
	// 目录创建后再次检查链路，降低 TOCTOU 风险。
	if err := utils.EnsureNoSymlinkBetween(rootAbs, fullDir); err != nil {
		log.Printf("Upload dir security check failed: %v\n", err)
		return "", common.NewInternalError("Erreur système : répertoire de stockage non sécurisé")
	}

	newFilename := uuid.New().String() + ext
	dst, err := utils.SecureJoin(fullDir, newFilename)
	if err != nil {
		log.Printf("SecureJoin dst error: %v\n", err)
		return "", common.NewInternalError("Erreur système : chemin de fichier invalide")
	}

	src, err := file.Open()
	if err != nil {
		return "", common.NewInternalError("Impossible de lire le fichier envoyé")
	}
	defer func() { _ = src.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return "", common.NewInternalError("Erreur système : impossible de créer le fichier")
	}
	defer func() { _ = out.Close() }()

	if _, err = io.Copy(out, src); err != nil {
		return "", common.NewInternalError("L'enregistrement du fichier a échoué")
	}

	return filepath.ToSlash(filepath.Join(dirRel, newFilename)), nil
}

// Delete 删除存储的文件。文件不存在不算错误。
func (s *StorageService) Delete(relPath string) error {
	rootAbs, err := s.uploadRoot()
	if err != nil {
		return err
	}
	full, err := utils.SecureJoin(rootAbs, filepath.FromSlash(relPath))
	if err != nil {
		log.Printf("Delete secure join error: %v\n", err)
		return common.NewInternalError("Erreur système : chemin de fichier invalide")
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		log.Printf("Remove file error: %v\n", err)
		return common.NewInternalError("La suppression du fichier a échoué")
	}
	return nil
}

// Exists 判断存储的文件是否存在。
func (s *StorageService) Exists(relPath string) bool {
	rootAbs, err := s.uploadRoot()
	if err != nil {
		return false
	}
	full, err := utils.SecureJoin(rootAbs, filepath.FromSlash(relPath))
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// URL 返回文件的公开访问路径。
func (s *StorageService) URL(relPath string) string {
	prefix := config.Get().Upload.URLPrefix
	if prefix == "" {
		prefix = "/storage/"
	}
	return prefix + relPath
}
