package service

import (
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec // sha1 is a content fingerprint, not a security boundary
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/config"
	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
	"github.com/leocth/labrinth/internal/validator"
)

// VersionFileUploadInput is the DTO for uploading a file to a version.
type VersionFileUploadInput struct {
	VersionID uuid.UUID
	File      multipart.File
	Header    *multipart.FileHeader
}

// ArchiveCheckInput is the DTO for a dry-run classification. Nothing is stored.
type ArchiveCheckInput struct {
	File         multipart.File
	Header       *multipart.FileHeader
	ProjectType  string
	Loaders      []string
	GameVersions []string
}

// UploadResult pairs the stored file with how its archive was classified.
type UploadResult struct {
	File           *domain.VersionFile `json:"file"`
	Classification validator.Result    `json:"classification"`
}

// VersionFileService defines the version file management contract.
type VersionFileService interface {
	Upload(ctx context.Context, input VersionFileUploadInput) (*UploadResult, error)
	Validate(ctx context.Context, input ArchiveCheckInput) (validator.Result, error)
	GetByID(ctx context.Context, fileID uuid.UUID) (*domain.VersionFile, error)
	ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error)
	GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error)
	Delete(ctx context.Context, fileID uuid.UUID) error
}

type versionFileService struct {
	versionRepo     port.VersionRepository
	fileRepo        port.VersionFileRepository
	gameVersionRepo port.GameVersionRepository
	storage         port.ObjectStorage
	validator       port.ArchiveValidator
	cfg             *config.S3Config
	logger          *zap.Logger
}

// NewVersionFileService creates a new VersionFileService implementation.
func NewVersionFileService(
	versionRepo port.VersionRepository,
	fileRepo port.VersionFileRepository,
	gameVersionRepo port.GameVersionRepository,
	storage port.ObjectStorage,
	archiveValidator port.ArchiveValidator,
	cfg *config.S3Config,
	logger *zap.Logger,
) VersionFileService {
	return &versionFileService{
		versionRepo:     versionRepo,
		fileRepo:        fileRepo,
		gameVersionRepo: gameVersionRepo,
		storage:         storage,
		validator:       archiveValidator,
		cfg:             cfg,
		logger:          logger.Named("versionFileService"),
	}
}

func (s *versionFileService) Upload(ctx context.Context, input VersionFileUploadInput) (*UploadResult, error) {
	version, err := s.versionRepo.GetByID(ctx, input.VersionID)
	if err != nil {
		return nil, err
	}

	filename := input.Header.Filename
	ext, contentType, err := s.checkFile(input.Header)
	if err != nil {
		return nil, err
	}

	data, err := s.readArchive(input.File)
	if err != nil {
		return nil, err
	}

	catalogue, err := s.gameVersionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading game versions: %w", err)
	}

	result, err := s.validator.ValidateFile(ctx, validator.FileInput{
		Data:          data,
		FileExtension: ext,
		ProjectType:   string(version.ProjectType),
		Loaders:       version.Loaders,
		GameVersions:  version.GameVersions,
		Catalogue:     catalogue,
	})
	if err != nil {
		s.logger.Info("archive rejected",
			zap.Stringer("version_id", version.ID),
			zap.String("filename", filename),
			zap.Error(err))
		return nil, err
	}

	existing, err := s.fileRepo.ListByVersion(ctx, version.ID)
	if err != nil {
		return nil, fmt.Errorf("listing version files: %w", err)
	}
	hasPrimary := false
	for i := range existing {
		if existing[i].Status == domain.FileStatusFailed {
			continue
		}
		if existing[i].Filename == filename {
			return nil, domain.ErrDuplicateFile
		}
		hasPrimary = hasPrimary || existing[i].IsPrimary
	}

	sha1Sum := sha1.Sum(data)
	sha512Sum := sha512.Sum512(data)
	sha1Hex := hex.EncodeToString(sha1Sum[:])
	dup, err := s.fileRepo.ExistsBySHA1(ctx, sha1Hex)
	if err != nil {
		return nil, fmt.Errorf("checking file hash: %w", err)
	}
	if dup {
		return nil, domain.ErrDuplicateFile
	}

	s3Key := fmt.Sprintf("data/%s/versions/%s/%s", version.ProjectID, version.ID, filename)
	file := &domain.VersionFile{
		ID:          uuid.New(),
		VersionID:   version.ID,
		URL:         s.cfg.CDNURL + "/" + s3Key,
		Filename:    filename,
		IsPrimary:   result.IsPassed() && !hasPrimary,
		Size:        int64(len(data)),
		ContentType: contentType,
		S3Bucket:    s.cfg.Bucket,
		S3Key:       s3Key,
		SHA1:        sha1Hex,
		SHA512:      hex.EncodeToString(sha512Sum[:]),
		Status:      domain.FileStatusPending,
	}
	if result.Status == validator.StatusWarning {
		warning := result.Warning
		file.Warning = &warning
	}

	s.logger.Info("uploading version file",
		zap.Stringer("version_id", version.ID),
		zap.String("filename", filename),
		zap.Int64("size", file.Size),
		zap.String("classification", string(result.Status)),
		zap.Bool("primary", file.IsPrimary))

	if err := s.fileRepo.Create(ctx, file); err != nil {
		return nil, fmt.Errorf("creating version file: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        file.Size,
	})
	if err != nil {
		s.logger.Error("storage upload failed", zap.Stringer("file_id", file.ID), zap.Error(err))
		if err := s.fileRepo.MarkFailed(ctx, file.ID); err != nil {
			s.logger.Error("marking file failed", zap.Stringer("file_id", file.ID), zap.Error(err))
		}
		return nil, domain.ErrUploadFailed
	}

	if err := s.fileRepo.UpdateStatus(ctx, file.ID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}
	file.Status = domain.FileStatusUploaded

	return &UploadResult{File: file, Classification: result}, nil
}

func (s *versionFileService) Validate(ctx context.Context, input ArchiveCheckInput) (validator.Result, error) {
	ext, _, err := s.checkFile(input.Header)
	if err != nil {
		return validator.Result{}, err
	}

	data, err := s.readArchive(input.File)
	if err != nil {
		return validator.Result{}, err
	}

	catalogue, err := s.gameVersionRepo.List(ctx)
	if err != nil {
		return validator.Result{}, fmt.Errorf("loading game versions: %w", err)
	}

	return s.validator.ValidateFile(ctx, validator.FileInput{
		Data:          data,
		FileExtension: ext,
		ProjectType:   input.ProjectType,
		Loaders:       input.Loaders,
		GameVersions:  input.GameVersions,
		Catalogue:     catalogue,
	})
}

func (s *versionFileService) GetByID(ctx context.Context, fileID uuid.UUID) (*domain.VersionFile, error) {
	return s.fileRepo.GetByID(ctx, fileID)
}

func (s *versionFileService) ListByVersion(ctx context.Context, versionID uuid.UUID) ([]domain.VersionFile, error) {
	if _, err := s.versionRepo.GetByID(ctx, versionID); err != nil {
		return nil, err
	}
	return s.fileRepo.ListByVersion(ctx, versionID)
}

func (s *versionFileService) GetDownloadURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	return s.storage.GetPresignedURL(ctx, file.S3Bucket, file.S3Key, s.cfg.PresignExpiry)
}

func (s *versionFileService) Delete(ctx context.Context, fileID uuid.UUID) error {
	file, err := s.fileRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}

	s.logger.Info("deleting version file", zap.Stringer("file_id", fileID), zap.String("key", file.S3Key))

	if err := s.storage.Delete(ctx, file.S3Bucket, file.S3Key); err != nil {
		s.logger.Error("storage delete failed", zap.Stringer("file_id", fileID), zap.Error(err))
		return fmt.Errorf("deleting from storage: %w", err)
	}

	return s.fileRepo.Delete(ctx, fileID)
}

// checkFile returns the lower-cased extension and stored content type of an
// accepted project file.
func (s *versionFileService) checkFile(header *multipart.FileHeader) (ext, contentType string, err error) {
	ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	contentType, ok := domain.ProjectFileTypes[ext]
	if !ok {
		return "", "", domain.ErrUnsupportedFileType
	}
	if header.Size > s.cfg.MaxFileSizeBytes() {
		return "", "", domain.ErrFileTooLarge
	}
	return ext, contentType, nil
}

// readArchive reads the whole upload and rejects anything that is not a zip
// container by its magic bytes.
func (s *versionFileService) readArchive(r io.Reader) ([]byte, error) {
	maxBytes := s.cfg.MaxFileSizeBytes()
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, domain.ErrFileTooLarge
	}
	if !isZipContainer(data) {
		return nil, domain.ErrUnsupportedFileType
	}
	return data, nil
}

func isZipContainer(data []byte) bool {
	for mt := mimetype.Detect(data); mt != nil; mt = mt.Parent() {
		if mt.Is("application/zip") {
			return true
		}
	}
	return false
}
