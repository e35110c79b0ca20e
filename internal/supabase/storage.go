// Package supabase stores uploaded 3D model assets in a Supabase
// Storage bucket and hands back public URLs the renderer can load.
package supabase

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

// AllowedModelExtensions is the model-asset allow-list. Validation is
// purely by filename suffix.
var AllowedModelExtensions = map[string]string{
	".glb":  "model/gltf-binary",
	".gltf": "model/gltf+json",
}

// ValidateModelFilename checks an uploaded filename against the
// allow-list and returns its content type.
func ValidateModelFilename(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := AllowedModelExtensions[ext]
	if !ok {
		return "", fmt.Errorf("unsupported model format %q: please upload a .glb or .gltf file", ext)
	}
	return contentType, nil
}

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadModel stores a model file under the project/room/item path and
// returns its storage path and public URL. The filename must already
// have passed ValidateModelFilename.
func (s *StorageClient) UploadModel(projectID, roomID, itemID, filename string, data []byte) (string, string, error) {
	contentType, err := ValidateModelFilename(filename)
	if err != nil {
		return "", "", err
	}

	storagePath := fmt.Sprintf("projects/%s/rooms/%s/items/%s/%s", projectID, roomID, itemID, filename)

	upsert := true
	_, err = s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload model: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

func (s *StorageClient) DeleteModel(storagePath string) error {
	_, err := s.client.RemoveFile(s.bucket, []string{storagePath})
	return err
}
