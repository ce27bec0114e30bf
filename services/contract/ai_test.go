package contract

import (
	"context"
	"fmt"
	"testing"

	clauseRepo "lexhub/database/repository/clause"
	contractRepo "lexhub/database/repository/contract"
	"lexhub/models"
)

type fakeContractRepo struct {
	contracts map[string]*models.Contract
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{contracts: make(map[string]*models.Contract)}
}

func (r *fakeContractRepo) GetByID(id string) (*models.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, contractRepo.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeContractRepo) Create(c *models.Contract) error {
	copied := *c
	r.contracts[c.ID] = &copied
	return nil
}

func (r *fakeContractRepo) Update(c *models.Contract) error {
	if _, ok := r.contracts[c.ID]; !ok {
		return contractRepo.ErrNotFound
	}
	copied := *c
	r.contracts[c.ID] = &copied
	return nil
}

func (r *fakeContractRepo) Delete(id, userID string) error {
	c, ok := r.contracts[id]
	if !ok || c.UserID != userID {
		return contractRepo.ErrNotFound
	}
	delete(r.contracts, id)
	return nil
}

func (r *fakeContractRepo) ListForUser(userID string, page, limit int, sortBy string, descending bool) (*models.ContractPage, error) {
	var out []models.Contract
	for _, c := range r.contracts {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return &models.ContractPage{Contracts: out}, nil
}

type fakeClauseRepo struct {
	mustHave []models.Clause
	search   []models.Clause
}

func (r *fakeClauseRepo) GetByID(string) (*models.Clause, error) { return nil, clauseRepo.ErrNotFound }
func (r *fakeClauseRepo) Create(*models.Clause) error            { return nil }
func (r *fakeClauseRepo) Update(*models.Clause) error            { return nil }
func (r *fakeClauseRepo) Delete(string) error                    { return nil }
func (r *fakeClauseRepo) Search(string, int) ([]models.Clause, error) {
	return r.search, nil
}
func (r *fakeClauseRepo) GetByCategory(string) ([]models.Clause, error) { return nil, nil }
func (r *fakeClauseRepo) GetMustHave(string) ([]models.Clause, error) {
	return r.mustHave, nil
}

type fakeTextClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeTextClient) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.response, f.err
}

func newTestContractService(ai *fakeTextClient) (*DefaultContractService, *fakeContractRepo) {
	repo := newFakeContractRepo()
	svc := &DefaultContractService{
		Repo:    repo,
		Clauses: &fakeClauseRepo{},
		AI:      ai,
	}
	return svc, repo
}

func TestParseSections(t *testing.T) {
	raw := "preamble to discard\n## Parties\nThe parties agree.\n\n## Term\nOne year.\n## Termination\nEither party may terminate."
	sections := parseSections(raw)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}
	wantTitles := []string{"Parties", "Term", "Termination"}
	for i, s := range sections {
		if s.Title != wantTitles[i] {
			t.Errorf("section %d title = %q, want %q", i, s.Title, wantTitles[i])
		}
		if s.Order != i+1 {
			t.Errorf("section %d order = %d, want %d", i, s.Order, i+1)
		}
	}
	if sections[0].Content != "The parties agree." {
		t.Errorf("section content = %q", sections[0].Content)
	}
}

func TestGenerateContractPersistsDraft(t *testing.T) {
	ai := &fakeTextClient{response: "## Parties\nA and B.\n## Term\nTwo years."}
	svc, repo := newTestContractService(ai)

	contract, err := svc.GenerateContract(context.Background(), "user-1", GenerateContractInput{
		Title: "Service Agreement",
		Type:  "employment",
		Parties: []models.ContractParty{
			{Name: "Acme", Role: "employer"},
			{Name: "Ravi", Role: "employee"},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContract: %v", err)
	}
	if contract.Status != "draft" || len(contract.Sections) != 2 {
		t.Errorf("unexpected contract: %+v", contract)
	}
	if _, ok := repo.contracts[contract.ID]; !ok {
		t.Error("generated contract was not persisted")
	}
}

func TestGenerateContractModelFailure(t *testing.T) {
	ai := &fakeTextClient{err: fmt.Errorf("quota exceeded")}
	svc, repo := newTestContractService(ai)

	_, err := svc.GenerateContract(context.Background(), "user-1", GenerateContractInput{
		Title: "NDA",
		Type:  "nda",
		Parties: []models.ContractParty{
			{Name: "Acme", Role: "discloser"},
			{Name: "Ravi", Role: "recipient"},
		},
	})
	if err == nil {
		t.Fatal("expected error when the model fails")
	}
	if len(repo.contracts) != 0 {
		t.Error("failed generation must not persist a contract")
	}
}

func TestRewriteSectionBounds(t *testing.T) {
	ai := &fakeTextClient{response: "Rewritten text."}
	svc, repo := newTestContractService(ai)
	repo.contracts["ct-1"] = &models.Contract{
		ID:     "ct-1",
		UserID: "user-1",
		Sections: []models.ContractSection{
			{Title: "Term", Content: "One year.", Order: 1},
		},
	}

	updated, err := svc.RewriteSection(context.Background(), "ct-1", "user-1", RewriteSectionInput{
		SectionIndex: 0,
		Instruction:  "make it two years",
	})
	if err != nil {
		t.Fatalf("RewriteSection: %v", err)
	}
	if updated.Sections[0].Content != "Rewritten text." {
		t.Errorf("section not rewritten: %q", updated.Sections[0].Content)
	}

	_, err = svc.RewriteSection(context.Background(), "ct-1", "user-1", RewriteSectionInput{SectionIndex: 5, Instruction: "x"})
	if err == nil {
		t.Fatal("expected error for out-of-range section index")
	}

	_, err = svc.RewriteSection(context.Background(), "ct-1", "someone-else", RewriteSectionInput{SectionIndex: 0, Instruction: "x"})
	if err == nil {
		t.Fatal("expected error for a non-owner")
	}
}

func TestSuggestClausePrefersLibrary(t *testing.T) {
	ai := &fakeTextClient{response: "Drafted clause text."}
	repo := newFakeContractRepo()
	clauses := &fakeClauseRepo{search: []models.Clause{{ID: "cl-1", Title: "Confidentiality"}}}
	svc := &DefaultContractService{Repo: repo, Clauses: clauses, AI: ai}

	got, err := svc.SuggestClause(context.Background(), "nda", "confidentiality")
	if err != nil {
		t.Fatalf("SuggestClause: %v", err)
	}
	if len(got) != 1 || got[0].ID != "cl-1" {
		t.Errorf("expected the library clause, got %+v", got)
	}
	if len(ai.prompts) != 0 {
		t.Error("model should not be called when the library matches")
	}

	// Empty library falls back to drafting.
	clauses.search = nil
	got, err = svc.SuggestClause(context.Background(), "nda", "confidentiality")
	if err != nil {
		t.Fatalf("SuggestClause fallback: %v", err)
	}
	if len(got) != 1 || got[0].Content != "Drafted clause text." {
		t.Errorf("expected a drafted clause, got %+v", got)
	}
}
