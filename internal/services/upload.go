package services

import (
	"io"
	"mime/multipart"

	"github.com/pkg/errors"
)

// UploadedFile is an uploaded document held in memory for the length of one request.
type UploadedFile struct {
	FileName string
	Data     []byte
}

type UploadService interface {
	ReadFile(file *multipart.FileHeader) (*UploadedFile, error)
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{
		maxFileSize: maxFileSize,
	}
}

// ReadFile loads the uploaded file into memory. Nothing is written to disk.
func (s *uploadService) ReadFile(file *multipart.FileHeader) (*UploadedFile, error) {
	if file.Size > s.maxFileSize {
		return nil, errors.Errorf("file too large: %d bytes, max size: %d bytes", file.Size, s.maxFileSize)
	}
	if file.Size == 0 {
		return nil, errors.New("file is empty")
	}

	src, err := file.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	// Read one byte past the limit so a lying Size header is still caught.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read uploaded file")
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, errors.Errorf("file too large, max size: %d bytes", s.maxFileSize)
	}

	return &UploadedFile{
		FileName: file.Filename,
		Data:     data,
	}, nil
}
