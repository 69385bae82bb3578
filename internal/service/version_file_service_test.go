package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/archive/archivetest"
	"github.com/leocth/labrinth/internal/config"
	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/port"
	"github.com/leocth/labrinth/internal/service"
	"github.com/leocth/labrinth/internal/validator"
	"github.com/leocth/labrinth/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "us-east-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 1,
		PresignExpiry: 3600,
		CDNURL:        "https://cdn.test",
	}
}

type serviceDeps struct {
	versions     *mocks.MockVersionRepo
	files        *mocks.MockVersionFileRepo
	gameVersions *mocks.MockGameVersionRepo
	storage      *mocks.MockObjectStorage
	validator    *mocks.MockArchiveValidator
}

func (d serviceDeps) assertExpectations(t *testing.T) {
	d.versions.AssertExpectations(t)
	d.files.AssertExpectations(t)
	d.gameVersions.AssertExpectations(t)
	d.storage.AssertExpectations(t)
	d.validator.AssertExpectations(t)
}

func setupVersionFileService() (service.VersionFileService, serviceDeps) {
	deps := serviceDeps{
		versions:     new(mocks.MockVersionRepo),
		files:        new(mocks.MockVersionFileRepo),
		gameVersions: new(mocks.MockGameVersionRepo),
		storage:      new(mocks.MockObjectStorage),
		validator:    new(mocks.MockArchiveValidator),
	}
	cfg := testS3Config()
	svc := service.NewVersionFileService(deps.versions, deps.files, deps.gameVersions,
		deps.storage, deps.validator, &cfg, zap.NewNop())
	return svc, deps
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", "application/octet-stream")

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(int64(len(content) + 1024))
	require.NoError(t, err)
	file, err := form.File["file"][0].Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	return file, form.File["file"][0]
}

func fabricVersion() *domain.Version {
	return &domain.Version{
		ID:           uuid.New(),
		ProjectID:    uuid.New(),
		ProjectType:  domain.ProjectTypeMod,
		Loaders:      []string{domain.LoaderFabric},
		GameVersions: []string{"1.19.2"},
	}
}

func catalogue() []domain.GameVersion {
	return []domain.GameVersion{{ID: 1, Version: "1.19.2", VersionType: domain.GameVersionRelease}}
}

func uploadInput(t *testing.T, v *domain.Version, filename string, content []byte) service.VersionFileUploadInput {
	file, header := createMultipartFile(t, filename, content)
	return service.VersionFileUploadInput{VersionID: v.ID, File: file, Header: header}
}

func TestVersionFileService_Upload_PrimaryOnPass(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()
	content := archivetest.Zip(t, "fabric.mod.json", "Mod.class")

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.MatchedBy(func(in validator.FileInput) bool {
		return in.FileExtension == "jar" &&
			in.ProjectType == "mod" &&
			assert.ObjectsAreEqual(v.Loaders, in.Loaders) &&
			assert.ObjectsAreEqual(v.GameVersions, in.GameVersions) &&
			bytes.Equal(content, in.Data) &&
			len(in.Catalogue) == 1
	})).Return(validator.Pass(), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{}, nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.AnythingOfType("string")).Return(false, nil)
	deps.files.On("Create", mock.Anything, mock.AnythingOfType("*domain.VersionFile")).Return(nil)
	deps.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && in.ContentType == "application/java-archive"
	})).Return(&port.UploadOutput{Location: "https://s3/test"}, nil)
	deps.files.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusUploaded).Return(nil)

	res, err := svc.Upload(context.Background(), uploadInput(t, v, "Sodium.jar", content))

	require.NoError(t, err)
	assert.Equal(t, validator.Pass(), res.Classification)
	assert.True(t, res.File.IsPrimary)
	assert.Nil(t, res.File.Warning)
	assert.Equal(t, domain.FileStatusUploaded, res.File.Status)
	assert.Equal(t, "data/"+v.ProjectID.String()+"/versions/"+v.ID.String()+"/Sodium.jar", res.File.S3Key)
	assert.Equal(t, "https://cdn.test/"+res.File.S3Key, res.File.URL)
	assert.Len(t, res.File.SHA1, 40)
	assert.Len(t, res.File.SHA512, 128)
	assert.Equal(t, int64(len(content)), res.File.Size)
	deps.assertExpectations(t)
}

func TestVersionFileService_Upload_WarningIsNotPrimary(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).
		Return(validator.Warning("Fabric mod file is a source file!"), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{}, nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.Anything).Return(false, nil)
	deps.files.On("Create", mock.Anything, mock.AnythingOfType("*domain.VersionFile")).Return(nil)
	deps.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	deps.files.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusUploaded).Return(nil)

	res, err := svc.Upload(context.Background(), uploadInput(t, v, "mod-sources.jar", archivetest.Zip(t, "fabric.mod.json")))

	require.NoError(t, err)
	assert.False(t, res.File.IsPrimary)
	require.NotNil(t, res.File.Warning)
	assert.Equal(t, "Fabric mod file is a source file!", *res.File.Warning)
}

func TestVersionFileService_Upload_ExistingPrimaryKept(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).Return(validator.Pass(), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).
		Return([]domain.VersionFile{{Filename: "main.jar", IsPrimary: true}}, nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.Anything).Return(false, nil)
	deps.files.On("Create", mock.Anything, mock.Anything).Return(nil)
	deps.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	deps.files.On("UpdateStatus", mock.Anything, mock.Anything, domain.FileStatusUploaded).Return(nil)

	res, err := svc.Upload(context.Background(), uploadInput(t, v, "extra.jar", archivetest.Zip(t, "fabric.mod.json", "A.class")))

	require.NoError(t, err)
	assert.False(t, res.File.IsPrimary)
}

func TestVersionFileService_Upload_DuplicateFilename(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).Return(validator.Pass(), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).
		Return([]domain.VersionFile{{Filename: "mod.jar"}}, nil)

	_, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", archivetest.Zip(t, "fabric.mod.json", "A.class")))

	assert.ErrorIs(t, err, domain.ErrDuplicateFile)
	deps.files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVersionFileService_Upload_DuplicateHash(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).Return(validator.Pass(), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{}, nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", archivetest.Zip(t, "fabric.mod.json", "A.class")))

	assert.ErrorIs(t, err, domain.ErrDuplicateFile)
	deps.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestVersionFileService_Upload_RejectsBeforeValidation(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  func(t *testing.T) []byte
		size     int64
		wantErr  error
	}{
		{
			name:     "unknown extension",
			filename: "readme.txt",
			content:  func(t *testing.T) []byte { return []byte("hello") },
			wantErr:  domain.ErrUnsupportedFileType,
		},
		{
			name:     "not a zip container",
			filename: "fake.jar",
			content:  func(t *testing.T) []byte { return []byte("%PDF-1.4 definitely not a jar") },
			wantErr:  domain.ErrUnsupportedFileType,
		},
		{
			name:     "declared size over limit",
			filename: "huge.jar",
			content:  func(t *testing.T) []byte { return archivetest.Zip(t, "fabric.mod.json") },
			size:     2 * 1024 * 1024,
			wantErr:  domain.ErrFileTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := setupVersionFileService()
			v := fabricVersion()
			deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)

			input := uploadInput(t, v, tt.filename, tt.content(t))
			if tt.size > 0 {
				input.Header.Size = tt.size
			}

			_, err := svc.Upload(context.Background(), input)

			assert.ErrorIs(t, err, tt.wantErr)
			deps.validator.AssertNotCalled(t, "ValidateFile", mock.Anything, mock.Anything)
		})
	}
}

func TestVersionFileService_Upload_ValidationErrorPassesThrough(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).
		Return(validator.Result{}, validator.InvalidInput("No fabric.mod.json present for Fabric file."))

	_, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", archivetest.Zip(t, "A.class")))

	assert.True(t, validator.IsKind(err, validator.KindInvalidInput))
	deps.files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestVersionFileService_Upload_StorageFailure(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()

	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).Return(validator.Pass(), nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{}, nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.Anything).Return(false, nil)
	deps.files.On("Create", mock.Anything, mock.Anything).Return(nil)
	deps.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down"))
	deps.files.On("MarkFailed", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	_, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", archivetest.Zip(t, "fabric.mod.json", "A.class")))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	deps.files.AssertCalled(t, "MarkFailed", mock.Anything, mock.AnythingOfType("uuid.UUID"))
	deps.files.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestVersionFileService_Upload_RetryAfterStorageFailureBecomesPrimary(t *testing.T) {
	svc, deps := setupVersionFileService()
	v := fabricVersion()
	content := archivetest.Zip(t, "fabric.mod.json", "A.class")

	var created []*domain.VersionFile
	deps.versions.On("GetByID", mock.Anything, v.ID).Return(v, nil)
	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.Anything).Return(validator.Pass(), nil)
	deps.files.On("ExistsBySHA1", mock.Anything, mock.Anything).Return(false, nil)
	deps.files.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			created = append(created, args.Get(1).(*domain.VersionFile))
		}).
		Return(nil)
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{}, nil).Once()
	deps.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("s3 down")).Once()
	deps.files.On("MarkFailed", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	_, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", content))
	require.ErrorIs(t, err, domain.ErrUploadFailed)
	require.Len(t, created, 1)
	deps.files.AssertCalled(t, "MarkFailed", mock.Anything, created[0].ID)

	failed := *created[0]
	failed.Status = domain.FileStatusFailed
	failed.IsPrimary = false
	deps.files.On("ListByVersion", mock.Anything, v.ID).Return([]domain.VersionFile{failed}, nil).Once()
	deps.storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil).Once()
	deps.files.On("UpdateStatus", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.FileStatusUploaded).Return(nil)

	res, err := svc.Upload(context.Background(), uploadInput(t, v, "mod.jar", content))
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEqual(t, created[0].ID, res.File.ID)
	assert.True(t, res.File.IsPrimary)
	assert.Equal(t, domain.FileStatusUploaded, res.File.Status)
	deps.assertExpectations(t)
}

func TestVersionFileService_Upload_VersionNotFound(t *testing.T) {
	svc, deps := setupVersionFileService()
	id := uuid.New()
	deps.versions.On("GetByID", mock.Anything, id).Return(nil, domain.ErrVersionNotFound)

	file, header := createMultipartFile(t, "mod.jar", archivetest.Zip(t, "fabric.mod.json"))
	_, err := svc.Upload(context.Background(), service.VersionFileUploadInput{VersionID: id, File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
}

func TestVersionFileService_Validate_DryRun(t *testing.T) {
	svc, deps := setupVersionFileService()
	content := archivetest.Zip(t, "quilt.mod.json", "A.class")
	file, header := createMultipartFile(t, "Mod.JAR", content)

	deps.gameVersions.On("List", mock.Anything).Return(catalogue(), nil)
	deps.validator.On("ValidateFile", mock.Anything, mock.MatchedBy(func(in validator.FileInput) bool {
		return in.FileExtension == "jar" && in.ProjectType == "mod" &&
			assert.ObjectsAreEqual([]string{"quilt"}, in.Loaders)
	})).Return(validator.Pass(), nil)

	res, err := svc.Validate(context.Background(), service.ArchiveCheckInput{
		File:         file,
		Header:       header,
		ProjectType:  "mod",
		Loaders:      []string{"quilt"},
		GameVersions: []string{"1.19.2"},
	})

	require.NoError(t, err)
	assert.True(t, res.IsPassed())
	deps.files.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	deps.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestVersionFileService_GetDownloadURL(t *testing.T) {
	svc, deps := setupVersionFileService()
	f := &domain.VersionFile{ID: uuid.New(), S3Bucket: "test-bucket", S3Key: "data/a/versions/b/c.jar"}

	deps.files.On("GetByID", mock.Anything, f.ID).Return(f, nil)
	deps.storage.On("GetPresignedURL", mock.Anything, "test-bucket", f.S3Key, int64(3600)).
		Return("https://signed", nil)

	url, err := svc.GetDownloadURL(context.Background(), f.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)
}

func TestVersionFileService_ListByVersion_UnknownVersion(t *testing.T) {
	svc, deps := setupVersionFileService()
	id := uuid.New()
	deps.versions.On("GetByID", mock.Anything, id).Return(nil, domain.ErrVersionNotFound)

	_, err := svc.ListByVersion(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrVersionNotFound)
	deps.files.AssertNotCalled(t, "ListByVersion", mock.Anything, mock.Anything)
}

func TestVersionFileService_Delete(t *testing.T) {
	t.Run("removes object then row", func(t *testing.T) {
		svc, deps := setupVersionFileService()
		f := &domain.VersionFile{ID: uuid.New(), S3Bucket: "b", S3Key: "k"}
		deps.files.On("GetByID", mock.Anything, f.ID).Return(f, nil)
		deps.storage.On("Delete", mock.Anything, "b", "k").Return(nil)
		deps.files.On("Delete", mock.Anything, f.ID).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), f.ID))
		deps.assertExpectations(t)
	})

	t.Run("storage error keeps row", func(t *testing.T) {
		svc, deps := setupVersionFileService()
		f := &domain.VersionFile{ID: uuid.New(), S3Bucket: "b", S3Key: "k"}
		deps.files.On("GetByID", mock.Anything, f.ID).Return(f, nil)
		deps.storage.On("Delete", mock.Anything, "b", "k").Return(errors.New("denied"))

		assert.Error(t, svc.Delete(context.Background(), f.ID))
		deps.files.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		svc, deps := setupVersionFileService()
		id := uuid.New()
		deps.files.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

		assert.ErrorIs(t, svc.Delete(context.Background(), id), domain.ErrNotFound)
	})
}
