package backup

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// DriveUploader stores backup files in a single Google Drive folder.
type DriveUploader struct {
	service  *drive.Service
	folderID string
}

// NewDriveUploader connects with service account credentials and looks up the
// backups folder by name, creating it when missing.
func NewDriveUploader(ctx context.Context, folderName string, opts ...option.ClientOption) (*DriveUploader, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create drive client: %w", err)
	}

	u := &DriveUploader{service: driveService}
	folderID, err := u.findFolder(ctx, folderName)
	if err != nil {
		return nil, err
	}

	if folderID == "" {
		log.Printf("backups folder %s not found, creating ...", folderName)
		if folderID, err = u.createFolder(ctx, folderName); err != nil {
			return nil, fmt.Errorf("create backups folder: %w", err)
		}
		log.Printf("new backups folder created: %s", folderID)
	} else {
		log.Debugf("found backups folder ID: %s", folderID)
	}

	u.folderID = folderID
	return u, nil
}

// NewDriveUploaderFromFile reads service account credentials json from credFile.
func NewDriveUploaderFromFile(ctx context.Context, credFile, folderName string) (*DriveUploader, error) {
	credentials, err := os.ReadFile(credFile)
	if err != nil {
		return nil, fmt.Errorf("read drive credentials: %w", err)
	}
	return NewDriveUploader(ctx, folderName, option.WithCredentialsJSON(credentials))
}

func (u *DriveUploader) FolderID() string {
	return u.folderID
}

func (u *DriveUploader) findFolder(ctx context.Context, name string) (string, error) {
	query := fmt.Sprintf(
		"mimeType = '%s' and trashed = false and name = '%s'",
		folderMimeType, strings.ReplaceAll(name, "'", `\'`),
	)
	res, err := u.service.Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("list drive folders: %w", err)
	}

	switch len(res.Files) {
	case 0:
		return "", nil
	case 1:
		return res.Files[0].Id, nil
	default:
		log.Warnf("found %d backups folders named %s, taking the first one: %s", len(res.Files), name, res.Files[0].Id)
		return res.Files[0].Id, nil
	}
}

func (u *DriveUploader) createFolder(ctx context.Context, name string) (string, error) {
	folder, err := u.service.Files.
		Create(&drive.File{
			Name:     name,
			MimeType: folderMimeType,
		}).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	return folder.Id, nil
}

func (u *DriveUploader) Upload(ctx context.Context, file BackupFile) (string, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return "", fmt.Errorf("open backup file: %w", err)
	}
	defer f.Close()

	created, err := u.service.Files.
		Create(&drive.File{
			Name:     file.Name,
			MimeType: "application/sql",
			Parents:  []string{u.folderID},
		}).
		Fields("id, parents").
		Media(f).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("create drive file: %w", err)
	}

	return created.Id, nil
}
