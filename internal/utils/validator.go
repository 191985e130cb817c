package utils

import (
	"io"
	"net/http"
	"regexp"
)

// ValidatePassword checks if the password meets the requirements.
// Returns true if valid, otherwise false and an error message.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Le mot de passe doit contenir au moins 8 caractères"
	}

	if matched, _ := regexp.MatchString(`^[a-zA-Z0-9[:punct:]]+$`, password); !matched {
		return false, "Le mot de passe contient des caractères non autorisés"
	}

	hasLetter, _ := regexp.MatchString(`[a-zA-Z]`, password)
	hasNum, _ := regexp.MatchString(`[0-9]`, password)
	if !hasLetter || !hasNum {
		return false, "Le mot de passe doit contenir au moins une lettre et un chiffre"
	}

	return true, ""
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(email string) bool {
	return len(email) <= 255 && emailPattern.MatchString(email)
}

// ValidateImageContent checks if the file content matches the extension.
func ValidateImageContent(reader io.ReadSeeker, ext string) (bool, string) {
	buffer := make([]byte, 512)
	_, err := reader.Read(buffer)
	if err != nil && err != io.EOF {
		return false, "Impossible de lire le contenu du fichier"
	}

	// 重置读取位置
	if _, err := reader.Seek(0, 0); err != nil {
		return false, "Impossible de repositionner la lecture du fichier"
	}

	contentType := http.DetectContentType(buffer)

	// 与原始校验保持一致：仅允许 JPEG / PNG / WebP
	allowedTypes := map[string]map[string]bool{
		"image/jpeg": {".jpg": true, ".jpeg": true},
		"image/png":  {".png": true},
		"image/webp": {".webp": true},
	}

	if exts, ok := allowedTypes[contentType]; ok {
		if exts[ext] {
			return true, ""
		}
	}

	return false, "Le format de l'image n'est pas autorisé. Formats autorisés : JPEG, PNG, WebP"
}
