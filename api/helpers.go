package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

const (
	FolderAvatars  = "deartime/avatars"
	FolderLetters  = "deartime/letters"
	FolderCapsules = "deartime/capsules"
	FolderAlbums   = "deartime/albums"

	maxUploadSize = 5 << 20 // 5 MiB per image

	defaultPageSize = 20
	maxPageSize     = 100
)

// readUploadedFile validates the size of a multipart file and returns its
// contents.
func readUploadedFile(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > maxUploadSize {
		return nil, fmt.Errorf("image %s exceeds the %s upload limit (got %s)",
			file.Filename, humanize.IBytes(maxUploadSize), humanize.IBytes(uint64(file.Size)))
	}

	currentFile, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer currentFile.Close()

	fileBytes, err := io.ReadAll(currentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return fileBytes, nil
}

func (server *Server) uploadFileToCloudinary(key string, value string, folder string, files ...*multipart.FileHeader) (uploadedFileURLs []string, err error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	for _, file := range files {
		fileBytes, err := readUploadedFile(file)
		if err != nil {
			return nil, err
		}

		fileName := fmt.Sprintf("%s_%s_%d", key, value, time.Now().Unix())

		uploadedFileURL, err := server.fileStore.UploadFile(fileBytes, fileName, folder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}

		uploadedFileURLs = append(uploadedFileURLs, uploadedFileURL)
	}

	return uploadedFileURLs, nil
}

// pageParams parses "page" and "page_size" query parameters into a SQL
// limit/offset pair.
func pageParams(ctx *gin.Context) (limit int32, offset int32) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return int32(pageSize), int32((page - 1) * pageSize)
}

// pathID parses a numeric path parameter.
func pathID(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
