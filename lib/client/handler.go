package clienthandler

import (
	"strings"

	"fntp-backend/db"
	clientstore "fntp-backend/lib/client/store"
	"fntp-backend/models"
	clientapimodels "fntp-backend/models/api/client"
	dbmodels "fntp-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(practitionerID string, data clientapimodels.ClientData) (id, hMsg string, err error)
	Get(practitionerID, id string) (clientapimodels.ClientView, error)
	List(practitionerID string, filter clientapimodels.ListFilter) (list []clientapimodels.ClientView, rowCount int64, err error)
	// CheckOwner returns a wrapped models.ErrNotFound when the client is absent or owned by someone else
	CheckOwner(practitionerID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: clientstore.NewInstance(db.DB),
	}
}

type impl struct {
	store clientstore.Provider
}

func (i impl) getLogger(practitionerID string) *log.Entry {
	return log.WithField("practitioner_id", practitionerID)
}

func (i impl) Create(practitionerID string, data clientapimodels.ClientData) (id, hMsg string, err error) {
	existed, err := i.store.GetByEmail(practitionerID, data.Email)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка поиска клиента по email")
	}
	if existed != nil {
		return "", "client with this email already exists", nil
	}
	rec := dbmodels.Client{
		PractitionerID: practitionerID,
		FirstName:      strings.TrimSpace(data.FirstName),
		LastName:       strings.TrimSpace(data.LastName),
		Email:          strings.TrimSpace(data.Email),
		Phone:          data.Phone,
		Gender:         data.Gender,
		DateOfBirth:    data.DateOfBirth,
		Notes:          data.Notes,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "ошибка создания клиента")
	}
	i.getLogger(practitionerID).
		WithField("client_id", id).
		Info("клиент создан")
	return id, "", nil
}

func (i impl) Get(practitionerID, id string) (clientapimodels.ClientView, error) {
	rec, err := i.get(practitionerID, id)
	if err != nil {
		return clientapimodels.ClientView{}, err
	}
	return clientapimodels.ClientConvert(*rec), nil
}

func (i impl) List(practitionerID string, filter clientapimodels.ListFilter) (list []clientapimodels.ClientView, rowCount int64, err error) {
	page, limit := filter.GetPage()
	recList, rowCount, err := i.store.List(practitionerID, page, limit)
	if err != nil {
		return nil, 0, errors.Wrap(err, "ошибка получения списка клиентов")
	}
	list = make([]clientapimodels.ClientView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, clientapimodels.ClientConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) CheckOwner(practitionerID, id string) error {
	_, err := i.get(practitionerID, id)
	return err
}

func (i impl) get(practitionerID, id string) (*dbmodels.Client, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка получения клиента")
	}
	if rec == nil || rec.PractitionerID != practitionerID {
		return nil, errors.Wrapf(models.ErrNotFound, "client %s", id)
	}
	return rec, nil
}
