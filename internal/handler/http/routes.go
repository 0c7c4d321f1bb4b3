package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Nipun-Yasas/legal-scale-backend-sub000/models"
)

// Init builds the router with every route of the API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	router.Route("/api", func(api chi.Router) {
		api.Get("/health", h.health)
		api.Get("/version", h.getServerVersion)

		api.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users", h.listUsers)
			r.Get("/documents/{documentID}", h.downloadDocument)

			r.Route("/cases", h.caseRoutes)
			r.Route("/agreements", h.agreementRoutes)
		})
	})
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	return router
}

func (h *Handler) caseRoutes(r chi.Router) {
	supervisors := h.requireRole(models.RoleSupervisor, models.RoleAdmin)

	r.With(supervisors).Post("/", h.createCase)
	r.Get("/", h.listCases(h.services.CaseService.ListAll))
	r.Get("/new", h.listCases(h.services.CaseService.ListNew))
	r.Get("/mine", h.listCases(h.services.CaseService.ListMine))
	r.Get("/assigned", h.listCases(h.services.CaseService.ListAssigned))

	r.Route("/{caseID}", func(r chi.Router) {
		r.Get("/", readCase(h, h.services.CaseService.GetCase))
		r.With(supervisors).Put("/assign", writeCase(h, http.StatusOK, h.assignCase))
		r.With(supervisors).Put("/status", writeCase(h, http.StatusOK, h.services.CaseService.UpdateStatus))
		r.Post("/comments", writeCase(h, http.StatusCreated, h.commentOnCase))
		r.Post("/attachments", h.attachDocument)
		r.Delete("/attachments/{id}", deleteChild(h, h.services.CaseService.RemoveAttachment))

		r.Route("/money-recovery", func(r chi.Router) {
			s := h.services.MoneyRecoveryService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/transactions", writeCase(h, http.StatusCreated, s.AddTransaction))
			r.Put("/transactions/{id}", writeChild(h, s.UpdateTransaction))
			r.Delete("/transactions/{id}", deleteChild(h, s.DeleteTransaction))
		})

		r.Route("/damages-recovery", func(r chi.Router) {
			s := h.services.DamagesRecoveryService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/transactions", writeCase(h, http.StatusCreated, s.AddTransaction))
			r.Put("/transactions/{id}", writeChild(h, s.UpdateTransaction))
			r.Delete("/transactions/{id}", deleteChild(h, s.DeleteTransaction))
		})

		r.Route("/land", func(r chi.Router) {
			s := h.services.LandService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/ownerships", writeCase(h, http.StatusCreated, s.AddOwnership))
			r.Put("/ownerships/{id}", writeChild(h, s.UpdateOwnership))
			r.Post("/deeds", writeCase(h, http.StatusCreated, s.AddDeed))
			r.Post("/deeds/upload", uploadToCase(h, s.UploadDeed))
			r.Put("/deeds/{id}", writeChild(h, s.UpdateDeed))
			r.Delete("/deeds/{id}", deleteChild(h, s.DeleteDeed))
		})

		r.Route("/criminal", func(r chi.Router) {
			s := h.services.CriminalService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/charges", writeCase(h, http.StatusCreated, s.AddCharge))
			r.Put("/charges/{id}", writeChild(h, s.UpdateCharge))
			r.Delete("/charges/{id}", deleteChild(h, s.DeleteCharge))
			r.Post("/hearings", writeCase(h, http.StatusCreated, s.AddHearing))
			r.Put("/hearings/{id}", writeChild(h, s.UpdateHearing))
			r.Delete("/hearings/{id}", deleteChild(h, s.DeleteHearing))
		})

		r.Route("/appeal", func(r chi.Router) {
			s := h.services.AppealService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/deadlines", writeCase(h, http.StatusCreated, s.AddDeadline))
			r.Put("/deadlines/{id}", writeChild(h, s.UpdateDeadline))
			r.Delete("/deadlines/{id}", deleteChild(h, s.DeleteDeadline))
			r.Put("/outcome", writeCase(h, http.StatusOK, s.SetOutcome))
			r.Delete("/outcome", deleteFromCase(h, s.DeleteOutcome))
		})

		r.Route("/inquiry", func(r chi.Router) {
			s := h.services.InquiryService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/panel", writeCase(h, http.StatusCreated, s.AddPanelMember))
			r.Put("/panel/{id}", writeChild(h, s.UpdatePanelMember))
			r.Delete("/panel/{id}", deleteChild(h, s.DeletePanelMember))
			r.Post("/findings", writeCase(h, http.StatusCreated, s.AddFinding))
			r.Put("/findings/{id}", writeChild(h, s.UpdateFinding))
			r.Delete("/findings/{id}", deleteChild(h, s.DeleteFinding))
			r.Post("/decisions", writeCase(h, http.StatusCreated, s.AddDecision))
			r.Put("/decisions/{id}", writeChild(h, s.UpdateDecision))
			r.Delete("/decisions/{id}", deleteChild(h, s.DeleteDecision))
		})

		r.Route("/other", func(r chi.Router) {
			s := h.services.OtherCaseService
			r.Put("/", writeCase(h, http.StatusOK, s.SetDetails))
			r.Get("/", readCase(h, s.GetDetails))
			r.Post("/attributes", writeCase(h, http.StatusCreated, s.AddAttribute))
			r.Put("/attributes/{id}", writeChild(h, s.UpdateAttribute))
			r.Delete("/attributes/{id}", deleteChild(h, s.DeleteAttribute))
			r.Post("/templates", writeCase(h, http.StatusCreated, s.AddTemplate))
			r.Post("/templates/upload", uploadToCase(h, s.UploadTemplate))
			r.Put("/templates/{id}", writeChild(h, s.UpdateTemplate))
			r.Delete("/templates/{id}", deleteChild(h, s.DeleteTemplate))
		})
	})
}

func (h *Handler) agreementRoutes(r chi.Router) {
	s := h.services.AgreementService

	r.Post("/", h.createAgreement)
	r.Get("/", h.listAgreements(s.ListAll))
	r.Get("/mine", h.listAgreements(s.ListMine))
	r.Get("/for-review", h.listAgreements(s.ListForReview))
	r.Get("/for-approval", h.listAgreements(s.ListForApproval))

	r.Route("/{"+agreementIDParam+"}", func(r chi.Router) {
		r.Get("/", h.agreementView(s.GetAgreement))
		r.Post("/revisions", h.uploadRevision)
		r.Put("/request-review", h.transitionAgreement(s.RequestReview))
		r.Put("/review", h.transitionAgreement(s.ReviewAgreement))
		r.Put("/decision", h.transitionAgreement(s.ApproveOrReject))
		r.Put("/execute", h.executeAgreement)
		r.Put("/sign", h.agreementView(s.DigitallySign))
		r.Post("/comments", h.commentOnAgreement)
	})
}
