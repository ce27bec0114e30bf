package handlers

import (
	clauseSvc "lexhub/services/clause"
	contractSvc "lexhub/services/contract"
	"lexhub/services/intelligence"
	lawyerSvc "lexhub/services/lawyer"
	meetingSvc "lexhub/services/meeting"
	"lexhub/services/signaling"
	storageSvc "lexhub/services/storage"
	templateSvc "lexhub/services/template"
)

// HandlerBundle groups all endpoint handlers with their services.
type HandlerBundle struct {
	Lawyers   lawyerSvc.LawyerService
	Contracts contractSvc.ContractService
	Clauses   clauseSvc.ClauseService
	Templates templateSvc.TemplateService
	Meetings  meetingSvc.MeetingService
	Storage   storageSvc.StorageService
	Speech    intelligence.Transcriber
	Hub       *signaling.Hub
}
