package document

import (
	"context"
	"fmt"

	"fntp-backend/db"
	"fntp-backend/lib/ai"
	clientstore "fntp-backend/lib/client/store"
	documentstore "fntp-backend/lib/document/store"
	filestorage "fntp-backend/lib/file-storage"
	"fntp-backend/lib/utils/helpers"
	"fntp-backend/models"
	documentapimodels "fntp-backend/models/api/document"
	dbmodels "fntp-backend/models/db"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const MaxDocumentSize = 10 << 20

type Provider interface {
	Upload(ctx context.Context, clientID, fileName, contentType string, data []byte) (id, hMsg string, err error)
	Get(id string) (documentapimodels.DocumentView, error)
	ListByClient(clientID string) ([]documentapimodels.DocumentView, error)
	Download(ctx context.Context, id string) (documentapimodels.DocumentFile, error)
	HandleAnalyzeTask(ctx context.Context, t *asynq.Task) error
}

var Instance Provider

func NewHandler(queue Enqueuer) {
	Instance = impl{
		store:       documentstore.NewInstance(db.DB),
		clientStore: clientstore.NewInstance(db.DB),
		storage:     filestorage.Instance,
		queue:       queue,
		ai:          ai.Instance,
	}
}

type impl struct {
	store       documentstore.Provider
	clientStore clientstore.Provider
	storage     filestorage.Provider
	queue       Enqueuer
	ai          ai.Provider
}

func (i impl) getLogger(documentID string) *log.Entry {
	return log.WithField("document_id", documentID)
}

func (i impl) Upload(ctx context.Context, clientID, fileName, contentType string, data []byte) (id, hMsg string, err error) {
	if len(data) == 0 {
		return "", "file is empty", nil
	}
	if len(data) > MaxDocumentSize {
		return "", fmt.Sprintf("file is larger than %d MB", MaxDocumentSize>>20), nil
	}
	client, err := i.clientStore.GetByID(clientID)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка получения клиента")
	}
	if client == nil {
		return "", "", errors.Wrapf(models.ErrNotFound, "client %s", clientID)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	rec := dbmodels.Document{
		ClientID:    clientID,
		Name:        fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
		Status:      models.DocumentStatusUploaded,
	}
	rec.ID = uuid.NewString()
	rec.ObjectKey = dbmodels.DocumentObjectKey(clientID, rec.ID, helpers.SafeFileName(fileName))
	err = i.storage.PutObject(ctx, rec.ObjectKey, data, contentType)
	if err != nil {
		return "", "", err
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка сохранения документа")
	}
	logger := i.getLogger(id).WithField("client_id", clientID)
	logger.Info("документ загружен")
	i.enqueueAnalysis(logger, id)
	return id, "", nil
}

// enqueueAnalysis leaves the document UPLOADED when the queue is unavailable.
func (i impl) enqueueAnalysis(logger *log.Entry, id string) {
	if i.queue == nil {
		logger.Warn("очередь задач не настроена, анализ документа не запущен")
		return
	}
	task, err := NewAnalyzeTask(id)
	if err != nil {
		logger.WithError(err).Error("ошибка создания задачи анализа документа")
		return
	}
	_, err = i.queue.Enqueue(task, asynq.MaxRetry(3), asynq.TaskID(AnalyzeTaskID(id)))
	if err != nil {
		logger.WithError(err).Error("ошибка постановки задачи анализа документа")
	}
}

func (i impl) Get(id string) (documentapimodels.DocumentView, error) {
	rec, err := i.getDocument(id)
	if err != nil {
		return documentapimodels.DocumentView{}, err
	}
	return documentapimodels.DocumentConvert(*rec), nil
}

func (i impl) ListByClient(clientID string) ([]documentapimodels.DocumentView, error) {
	list, err := i.store.ListByClient(clientID)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения списка документов")
	}
	result := make([]documentapimodels.DocumentView, 0, len(list))
	for _, rec := range list {
		result = append(result, documentapimodels.DocumentConvert(rec))
	}
	return result, nil
}

func (i impl) Download(ctx context.Context, id string) (documentapimodels.DocumentFile, error) {
	rec, err := i.getDocument(id)
	if err != nil {
		return documentapimodels.DocumentFile{}, err
	}
	data, err := i.storage.GetObject(ctx, rec.ObjectKey)
	if err != nil {
		return documentapimodels.DocumentFile{}, err
	}
	return documentapimodels.DocumentFile{
		Name:        rec.Name,
		ContentType: rec.ContentType,
		Data:        data,
	}, nil
}

func (i impl) getDocument(id string) (*dbmodels.Document, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения документа")
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "document %s", id)
	}
	return rec, nil
}
