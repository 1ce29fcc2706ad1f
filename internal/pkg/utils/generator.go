package utils

import (
	"agenda-service/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateAvatarObjectName(doctorID, fileExtension string) string {
	return fmt.Sprintf(constvars.AvatarObjectNameFormat, doctorID, strings.ToLower(fileExtension))
}
