package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/connexcu/voice-backend/infra/cloudrun"
	"github.com/connexcu/voice-backend/infra/docker"
	"github.com/connexcu/voice-backend/infra/firestore"
	"github.com/connexcu/voice-backend/infra/identity"
	"github.com/connexcu/voice-backend/infra/kms"
	"github.com/connexcu/voice-backend/infra/provider"
	"github.com/connexcu/voice-backend/infra/secret"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable identity platform for the tenant admin API (firebase)
		ident, err := identity.SetupIdentity(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create a database for the project
		err = firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// enable KMS and create the key that wraps tenant core-banking passwords
		err = kms.SetupKMS(ctx, prov)
		if err != nil {
			return err
		}
		keyID, err := kms.CreateKey(ctx, prov, "voice-backend", "tenant-credentials")
		if err != nil {
			return err
		}

		// enable secret manager; the app provisions per-tenant secrets at runtime
		err = secret.SetupSecretManager(ctx, prov)
		if err != nil {
			return err
		}

		// create docker repo
		repo, err := docker.CreateCloudrunRepo(ctx)
		if err != nil {
			return err
		}

		apiSA, err := cloudrun.SetupCloudRun(ctx, prov, keyID, ident, repo)
		if err != nil {
			return err
		}

		return secret.GrantRuntimeAccess(ctx, prov, apiSA)
	})
}
