package app

import (
	"errors"
	"log"
	"mime/multipart"

	"github.com/Hamziss/agence-immobliere/internal/common"
	"github.com/Hamziss/agence-immobliere/internal/model"
	"github.com/Hamziss/agence-immobliere/internal/policy"
	"gorm.io/gorm"
)

var extMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ListForProperty 返回一个房源的全部图片，主图排在最前。
// 对请求者不可见的房源按“不存在”处理。
func (c *ImageUseCase) ListForProperty(actor *policy.Actor, propertyID uint) ([]model.Image, error) {
	property, err := c.propertyStore.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanView(actor, property) {
		return nil, common.NewNotFoundError("Bien introuvable")
	}

	images, err := c.imageStore.ListByProperty(propertyID)
	if err != nil {
		log.Printf("List images error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer les images")
	}

	return images, nil
}

// UploadBatch 为房源上传一批图片。
// 房源此前没有任何图片时，本批第一张自动成为主图；其余一律非主图。
func (c *ImageUseCase) UploadBatch(actor *policy.Actor, propertyID uint, files []*multipart.FileHeader) ([]model.Image, error) {
	property, err := c.propertyStore.FindByID(propertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Bien introuvable")
		}
		log.Printf("Find property error: %v\n", err)
		return nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	if !policy.CanUpdate(actor, property) {
		return nil, common.NewForbiddenError("Vous n'êtes pas autorisé à ajouter des images à ce bien")
	}

	if err := c.uploadService.ValidateBatch(files); err != nil {
		return nil, err
	}

	// 先整批校验，避免保存一半后才发现非法文件。
	exts := make([]string, len(files))
	for i, file := range files {
		ext, err := c.uploadService.ValidateImageFile(file)
		if err != nil {
			return nil, err
		}
		exts[i] = ext
	}

	// 文件 IO 放在数据库写入之前；DB 失败时删除已保存的文件。
	records := make([]*model.Image, 0, len(files))
	savedPaths := make([]string, 0, len(files))
	for i, file := range files {
		relPath, err := c.storageService.SaveUpload(file, propertyID, exts[i])
		if err != nil {
			c.cleanupFiles(savedPaths)
			return nil, err
		}
		savedPaths = append(savedPaths, relPath)
		records = append(records, &model.Image{
			Path:     relPath,
			Filename: file.Filename,
			Size:     file.Size,
			MimeType: extMimeTypes[exts[i]],
		})
	}

	if err := c.imageStore.CreateBatch(propertyID, records); err != nil {
		c.cleanupFiles(savedPaths)
		log.Printf("Create image records error: %v\n", err)
		return nil, common.NewInternalError("L'enregistrement des images a échoué")
	}

	images := make([]model.Image, len(records))
	for i, record := range records {
		images[i] = *record
	}
	return images, nil
}

// SetPrimary 将图片设为主图，同一房源的其他图片在同一事务内被取消标记。
func (c *ImageUseCase) SetPrimary(actor *policy.Actor, imageID uint) (*model.Image, error) {
	image, property, err := c.findImageWithProperty(imageID)
	if err != nil {
		return nil, err
	}

	if !policy.CanUpdate(actor, property) {
		return nil, common.NewForbiddenError("Vous n'êtes pas autorisé à modifier cette image")
	}

	if err := c.imageStore.SetPrimary(image); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("Image introuvable")
		}
		log.Printf("Set primary image error: %v\n", err)
		return nil, common.NewInternalError("La définition de l'image principale a échoué")
	}

	image.IsPrimary = true
	return image, nil
}

// Delete 删除图片记录与文件。
// 删除主图不会自动递补，房源将暂时没有主图，直到显式设置。
func (c *ImageUseCase) Delete(actor *policy.Actor, imageID uint) error {
	image, property, err := c.findImageWithProperty(imageID)
	if err != nil {
		return err
	}

	if !policy.CanUpdate(actor, property) {
		return common.NewForbiddenError("Vous n'êtes pas autorisé à supprimer cette image")
	}

	if err := c.imageStore.Delete(image); err != nil {
		log.Printf("Delete image record error: %v\n", err)
		return common.NewInternalError("La suppression de l'image a échoué")
	}

	if c.storageService.Exists(image.Path) {
		if err := c.storageService.Delete(image.Path); err != nil {
			// 记录已删，文件残留只记日志。
			log.Printf("Delete image file error: %v\n", err)
		}
	}

	return nil
}

func (c *ImageUseCase) findImageWithProperty(imageID uint) (*model.Image, *model.Property, error) {
	image, err := c.imageStore.FindByID(imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewNotFoundError("Image introuvable")
		}
		log.Printf("Find image error: %v\n", err)
		return nil, nil, common.NewInternalError("Impossible de récupérer l'image")
	}

	// 父房源被软删除时，其图片同样按不存在处理。
	property, err := c.propertyStore.FindByID(image.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, common.NewNotFoundError("Image introuvable")
		}
		log.Printf("Find parent property error: %v\n", err)
		return nil, nil, common.NewInternalError("Impossible de récupérer le bien")
	}

	return image, property, nil
}

func (c *ImageUseCase) cleanupFiles(paths []string) {
	for _, path := range paths {
		if err := c.storageService.Delete(path); err != nil {
			log.Printf("Cleanup uploaded file error: %v\n", err)
		}
	}
}
