package services_test

import (
	"sort"
	"time"

	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
)

// In-memory repository fakes. They mirror the contracts of the GORM-backed
// implementations, including the all-or-nothing behavior of UpdatePositions,
// so service tests run without a database.

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if _, err := r.FindByEmail(user.Email); err == nil {
		return repositories.ErrUserAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repositories.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(userID uint, at time.Time) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.LastLogin = &at
	return nil
}

func (r *fakeUserRepo) UpdateRole(userID uint, role models.UserRole) error {
	user, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	user.Role = role
	return nil
}

func (r *fakeUserRepo) FindByOrganization(organizationID uint) ([]models.User, error) {
	var out []models.User
	for _, user := range r.users {
		if user.OrganizationID != nil && *user.OrganizationID == organizationID {
			out = append(out, *user)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeOrgRepo struct {
	orgs   map[uint]*models.Organization
	nextID uint
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: make(map[uint]*models.Organization), nextID: 1}
}

func (r *fakeOrgRepo) FindByID(id uint) (*models.Organization, error) {
	org, ok := r.orgs[id]
	if !ok {
		return nil, repositories.ErrOrganizationNotFound
	}
	cp := *org
	return &cp, nil
}

func (r *fakeOrgRepo) FindByName(name string) (*models.Organization, error) {
	for _, org := range r.orgs {
		if org.Name == name {
			cp := *org
			return &cp, nil
		}
	}
	return nil, repositories.ErrOrganizationNotFound
}

func (r *fakeOrgRepo) Create(org *models.Organization) error {
	org.ID = r.nextID
	r.nextID++
	cp := *org
	r.orgs[org.ID] = &cp
	return nil
}

func (r *fakeOrgRepo) FindOrCreateByName(name string) (*models.Organization, error) {
	if org, err := r.FindByName(name); err == nil {
		return org, nil
	}
	org := &models.Organization{Name: name, SubscriptionType: "basic"}
	if err := r.Create(org); err != nil {
		return nil, err
	}
	return org, nil
}

type fakeModuleRepo struct {
	modules map[uint]*models.Module
	nextID  uint
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{modules: make(map[uint]*models.Module), nextID: 1}
}

func (r *fakeModuleRepo) FindAll() ([]models.Module, error) {
	var out []models.Module
	for _, m := range r.modules {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ModuleNumber != out[j].ModuleNumber {
			return out[i].ModuleNumber < out[j].ModuleNumber
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeModuleRepo) FindByID(id uint) (*models.Module, error) {
	m, ok := r.modules[id]
	if !ok {
		return nil, repositories.ErrModuleNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeModuleRepo) Create(module *models.Module) error {
	module.ID = r.nextID
	r.nextID++
	module.CreatedAt = time.Now()
	cp := *module
	r.modules[module.ID] = &cp
	return nil
}

func (r *fakeModuleRepo) Update(module *models.Module) error {
	if _, ok := r.modules[module.ID]; !ok {
		return repositories.ErrModuleNotFound
	}
	cp := *module
	r.modules[module.ID] = &cp
	return nil
}

func (r *fakeModuleRepo) Delete(id uint) error {
	if _, ok := r.modules[id]; !ok {
		return repositories.ErrModuleNotFound
	}
	delete(r.modules, id)
	return nil
}

type fakeArticleRepo struct {
	articles map[uint]*models.Article
	nextID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[uint]*models.Article), nextID: 1}
}

func (r *fakeArticleRepo) FindByModule(moduleID uint) ([]models.Article, error) {
	var out []models.Article
	for _, a := range r.articles {
		if a.ModuleID == moduleID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeArticleRepo) FindByID(id uint) (*models.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, repositories.ErrArticleNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) FindByIDs(ids []uint) ([]models.Article, error) {
	var out []models.Article
	for _, id := range ids {
		if a, ok := r.articles[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = r.nextID
	r.nextID++
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) Update(article *models.Article) error {
	if _, ok := r.articles[article.ID]; !ok {
		return repositories.ErrArticleNotFound
	}
	cp := *article
	r.articles[article.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) Delete(id uint) error {
	if _, ok := r.articles[id]; !ok {
		return repositories.ErrArticleNotFound
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) NextPosition(moduleID uint) (int, error) {
	max := 0
	for _, a := range r.articles {
		if a.ModuleID == moduleID && a.Position > max {
			max = a.Position
		}
	}
	return max + 1, nil
}

// UpdatePositions applies all or nothing, like the transactional real thing.
func (r *fakeArticleRepo) UpdatePositions(updates []repositories.PositionUpdate) ([]models.Article, error) {
	for _, u := range updates {
		if _, ok := r.articles[u.ID]; !ok {
			return nil, repositories.ErrArticleNotFound
		}
	}
	var out []models.Article
	for _, u := range updates {
		r.articles[u.ID].Position = u.Position
		out = append(out, *r.articles[u.ID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type fakeFormRepo struct {
	forms  map[uint]*models.Form
	nextID uint
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[uint]*models.Form), nextID: 1}
}

func (r *fakeFormRepo) FindByModule(moduleID uint) ([]models.Form, error) {
	var out []models.Form
	for _, f := range r.forms {
		if f.ModuleID == moduleID {
			out = append(out, *f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *fakeFormRepo) FindByID(id uint) (*models.Form, error) {
	f, ok := r.forms[id]
	if !ok {
		return nil, repositories.ErrFormNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFormRepo) FindByIDs(ids []uint) ([]models.Form, error) {
	var out []models.Form
	for _, id := range ids {
		if f, ok := r.forms[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFormRepo) Create(form *models.Form) error {
	form.ID = r.nextID
	r.nextID++
	cp := *form
	r.forms[form.ID] = &cp
	return nil
}

func (r *fakeFormRepo) Update(form *models.Form) error {
	if _, ok := r.forms[form.ID]; !ok {
		return repositories.ErrFormNotFound
	}
	cp := *form
	r.forms[form.ID] = &cp
	return nil
}

func (r *fakeFormRepo) Delete(id uint) error {
	if _, ok := r.forms[id]; !ok {
		return repositories.ErrFormNotFound
	}
	delete(r.forms, id)
	return nil
}

func (r *fakeFormRepo) NextPosition(moduleID uint) (int, error) {
	max := 0
	for _, f := range r.forms {
		if f.ModuleID == moduleID && f.Position > max {
			max = f.Position
		}
	}
	return max + 1, nil
}

func (r *fakeFormRepo) UpdatePositions(updates []repositories.PositionUpdate) ([]models.Form, error) {
	for _, u := range updates {
		if _, ok := r.forms[u.ID]; !ok {
			return nil, repositories.ErrFormNotFound
		}
	}
	var out []models.Form
	for _, u := range updates {
		r.forms[u.ID].Position = u.Position
		out = append(out, *r.forms[u.ID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

type responseKey struct {
	formID uint
	orgID  uint
}

type fakeFormResponseRepo struct {
	responses map[responseKey]*models.FormResponse
	nextID    uint
}

func newFakeFormResponseRepo() *fakeFormResponseRepo {
	return &fakeFormResponseRepo{responses: make(map[responseKey]*models.FormResponse), nextID: 1}
}

func (r *fakeFormResponseRepo) FindByFormAndOrganization(formID, organizationID uint) (*models.FormResponse, error) {
	resp, ok := r.responses[responseKey{formID, organizationID}]
	if !ok {
		return nil, repositories.ErrFormResponseNotFound
	}
	cp := *resp
	return &cp, nil
}

func (r *fakeFormResponseRepo) Upsert(response *models.FormResponse) (*models.FormResponse, error) {
	key := responseKey{response.FormID, response.OrganizationID}
	if existing, ok := r.responses[key]; ok {
		existing.Answers = response.Answers
		existing.UserID = response.UserID
		existing.UpdatedAt = time.Now()
	} else {
		response.ID = r.nextID
		r.nextID++
		response.CreatedAt = time.Now()
		response.UpdatedAt = response.CreatedAt
		cp := *response
		r.responses[key] = &cp
	}
	return r.FindByFormAndOrganization(response.FormID, response.OrganizationID)
}

type fakeFileRepo struct {
	files  map[uint]*models.File
	nextID uint
}

func newFakeFileRepo() *fakeFileRepo {
	return &fakeFileRepo{files: make(map[uint]*models.File), nextID: 1}
}

func (r *fakeFileRepo) Create(file *models.File) error {
	file.ID = r.nextID
	r.nextID++
	file.CreatedAt = time.Now()
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *fakeFileRepo) FindByID(id uint) (*models.File, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, repositories.ErrFileNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFileRepo) FindMetaByID(id uint) (*models.File, error) {
	f, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	f.Data = nil
	return f, nil
}
