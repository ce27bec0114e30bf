package template

import (
	"errors"
	"testing"

	templateRepo "lexhub/database/repository/template"
	"lexhub/models"
	"lexhub/utils"
)

type fakeRepo struct {
	templates map[string]*models.Template
}

func newFakeRepo(templates ...*models.Template) *fakeRepo {
	r := &fakeRepo{templates: make(map[string]*models.Template)}
	for _, tpl := range templates {
		copied := *tpl
		r.templates[tpl.ID] = &copied
	}
	return r
}

func (r *fakeRepo) GetByID(id string) (*models.Template, error) {
	tpl, ok := r.templates[id]
	if !ok {
		return nil, templateRepo.ErrNotFound
	}
	copied := *tpl
	return &copied, nil
}

func (r *fakeRepo) Create(t *models.Template) error {
	copied := *t
	r.templates[t.ID] = &copied
	return nil
}

func (r *fakeRepo) Update(t *models.Template) error {
	if _, ok := r.templates[t.ID]; !ok {
		return templateRepo.ErrNotFound
	}
	copied := *t
	r.templates[t.ID] = &copied
	return nil
}

func (r *fakeRepo) Delete(id string) error {
	if _, ok := r.templates[id]; !ok {
		return templateRepo.ErrNotFound
	}
	delete(r.templates, id)
	return nil
}

func (r *fakeRepo) Search(query string, limit int) ([]models.Template, error) {
	var out []models.Template
	for _, tpl := range r.templates {
		out = append(out, *tpl)
	}
	return out, nil
}

func (r *fakeRepo) GetByCategory(string) ([]models.Template, error) { return nil, nil }
func (r *fakeRepo) GetByIndustry(string) ([]models.Template, error) { return nil, nil }
func (r *fakeRepo) GetPopular(int) ([]models.Template, error)       { return nil, nil }

func (r *fakeRepo) AddReview(id string, review models.TemplateReview) error {
	tpl, ok := r.templates[id]
	if !ok {
		return templateRepo.ErrNotFound
	}
	tpl.Reviews = append(tpl.Reviews, review)
	return nil
}

func leaseTemplate() *models.Template {
	return &models.Template{
		ID:    "tpl-1",
		Title: "Residential Lease",
		Type:  "lease",
		Sections: []models.ContractSection{
			{Title: "Rent", Content: "Payable monthly in advance.", Order: 1},
		},
	}
}

func TestCreateTemplateValidation(t *testing.T) {
	svc := &DefaultTemplateService{Repo: newFakeRepo()}

	cases := []struct {
		name string
		data models.Template
	}{
		{"missing title", models.Template{Type: "lease", Sections: leaseTemplate().Sections}},
		{"missing type", models.Template{Title: "Lease", Sections: leaseTemplate().Sections}},
		{"no sections", models.Template{Title: "Lease", Type: "lease"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateTemplate(tc.data)
			var badRequest utils.BadRequestError
			if !errors.As(err, &badRequest) {
				t.Errorf("expected BadRequestError, got %v", err)
			}
		})
	}

	created, err := svc.CreateTemplate(models.Template{
		Title:    "Lease",
		Type:     "lease",
		Sections: leaseTemplate().Sections,
		Reviews:  []models.TemplateReview{{UserID: "smuggled", Rating: 5}},
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if created.ID == "" {
		t.Error("created template has no ID")
	}
	if len(created.Reviews) != 0 {
		t.Error("reviews must not be settable at creation")
	}
}

func TestAddReviewBoundsAndAppend(t *testing.T) {
	repo := newFakeRepo(leaseTemplate())
	svc := &DefaultTemplateService{Repo: repo}

	for _, rating := range []int{0, 6} {
		_, err := svc.AddReview("tpl-1", "user-1", ReviewInput{Rating: rating})
		var badRequest utils.BadRequestError
		if !errors.As(err, &badRequest) {
			t.Errorf("rating %d: expected BadRequestError, got %v", rating, err)
		}
	}

	updated, err := svc.AddReview("tpl-1", "user-1", ReviewInput{Rating: 4, Comment: "solid"})
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if len(updated.Reviews) != 1 || updated.Reviews[0].UserID != "user-1" {
		t.Errorf("review not recorded: %+v", updated.Reviews)
	}

	_, err = svc.AddReview("missing", "user-1", ReviewInput{Rating: 4})
	var notFound utils.NotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError for unknown template, got %v", err)
	}
}

func TestUpdateTemplatePreservesReviews(t *testing.T) {
	tpl := leaseTemplate()
	tpl.Reviews = []models.TemplateReview{{UserID: "user-1", Rating: 5}}
	repo := newFakeRepo(tpl)
	svc := &DefaultTemplateService{Repo: repo}

	updated, err := svc.UpdateTemplate("tpl-1", models.Template{
		Title:    "Commercial Lease",
		Type:     "lease",
		Sections: tpl.Sections,
	})
	if err != nil {
		t.Fatalf("UpdateTemplate: %v", err)
	}
	if updated.Title != "Commercial Lease" {
		t.Errorf("title = %q", updated.Title)
	}
	if len(updated.Reviews) != 1 {
		t.Error("update dropped existing reviews")
	}
}

func TestSearchTemplatesRequiresQuery(t *testing.T) {
	svc := &DefaultTemplateService{Repo: newFakeRepo()}

	_, err := svc.SearchTemplates("", 10)
	var badRequest utils.BadRequestError
	if !errors.As(err, &badRequest) {
		t.Fatalf("expected BadRequestError for an empty query, got %v", err)
	}
}
