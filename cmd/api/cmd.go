package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/connexcu/voice-backend/internal/bootstrap"
	"github.com/connexcu/voice-backend/internal/client/poweron"
	"github.com/connexcu/voice-backend/internal/config"
	"github.com/connexcu/voice-backend/internal/crypto"
	"github.com/connexcu/voice-backend/internal/handlers"
	"github.com/connexcu/voice-backend/internal/response"
	"github.com/connexcu/voice-backend/internal/router"
	"github.com/connexcu/voice-backend/internal/services"
	"github.com/connexcu/voice-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// helpers
	kmsHelper := crypto.NewKMS(bs.KMS, cfg.KMSKeyName)

	// stores
	sstore := store.NewSessionStore(bs.Firestore)
	tstore := store.NewTenantStore(bs.Firestore)
	rstore := store.NewRequestStore(bs.Firestore)
	astore := store.NewAuditStore(bs.Firestore)
	pstore := store.NewPowerOnSecretsStore(bs.Secrets, cfg.ProjectID)

	// core-banking adapter
	core := poweron.NewAdapter()

	// services
	credserv := services.NewCredentialService(pstore, tstore, kmsHelper)
	toolserv := services.NewToolService(sstore, rstore, astore, credserv, core, cfg.CoreTimeout)
	tenserv := services.NewTenantService(tstore, pstore, astore, kmsHelper)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.ToolSvc = toolserv
	deps.TenantSvc = tenserv

	// router
	r := router.NewRouter(deps, cfg.WebhookSecret)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
