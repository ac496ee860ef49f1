package registry_test

import (
	"context"
	"errors"
	"testing"

	registry "janus/contexts/system/registry"
	"janus/contexts/system/registry/application/commands"
	domainerrors "janus/contexts/system/registry/domain/errors"
)

func strptr(v string) *string { return &v }

func TestCreateApplicationIsReadableAfterCommit(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.GetApplication.Execute("console"); !errors.Is(err, domainerrors.ErrApplicationNotFound) {
		t.Fatalf("expected empty catalog, got %v", err)
	}

	created, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name:        "console",
		DisplayName: strptr("Admin Console"),
		SubDomain:   "console",
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("create application failed: %v", err)
	}

	// Read-your-writes through the snapshot.
	entry, err := module.GetApplication.Execute("console")
	if err != nil {
		t.Fatalf("lookup after create failed: %v", err)
	}
	if entry.ID != created.ID || !entry.IsActive {
		t.Fatalf("snapshot entry does not match creation, got %+v", entry)
	}

	_, err = module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name:      "console",
		SubDomain: "other",
	})
	if !errors.Is(err, domainerrors.ErrApplicationNameConflict) {
		t.Fatalf("expected name conflict, got %v", err)
	}
}

func TestCreateApplicationValidation(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{SubDomain: "x"}); !errors.Is(err, domainerrors.ErrNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}
	if _, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{Name: "x"}); !errors.Is(err, domainerrors.ErrSubDomainRequired) {
		t.Fatalf("expected sub domain required, got %v", err)
	}
}

func TestRoleUniquenessPerOwner(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	app, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name: "console", SubDomain: "console", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create application failed: %v", err)
	}
	svc, err := module.CreateService.Execute(ctx, commands.CreateServiceCommand{
		Name: "billing", SubDomain: "billing", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create service failed: %v", err)
	}

	if _, err := module.AddApplicationRole.Execute(ctx, commands.AddRoleCommand{OwnerID: app.ID, Name: "admin"}); err != nil {
		t.Fatalf("add application role failed: %v", err)
	}
	if _, err := module.AddApplicationRole.Execute(ctx, commands.AddRoleCommand{OwnerID: app.ID, Name: "admin"}); !errors.Is(err, domainerrors.ErrApplicationRoleConflict) {
		t.Fatalf("expected application role conflict, got %v", err)
	}
	// Same role name on a different owner is fine.
	if _, err := module.AddServiceRole.Execute(ctx, commands.AddRoleCommand{OwnerID: svc.ID, Name: "admin"}); err != nil {
		t.Fatalf("add service role failed: %v", err)
	}

	entry, err := module.GetApplication.Execute("console")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(entry.Roles) != 1 || entry.Roles[0].Name != "admin" {
		t.Fatalf("expected snapshot to carry the role, got %+v", entry.Roles)
	}

	if err := module.DeleteApplicationRole.Execute(ctx, app.ID, "admin"); err != nil {
		t.Fatalf("delete role failed: %v", err)
	}
	if err := module.DeleteApplicationRole.Execute(ctx, app.ID, "admin"); !errors.Is(err, domainerrors.ErrRoleNotFound) {
		t.Fatalf("expected role not found after delete, got %v", err)
	}
}

func TestConfigurationUpsertReplacesValue(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	svc, err := module.CreateService.Execute(ctx, commands.CreateServiceCommand{
		Name: "billing", SubDomain: "billing", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create service failed: %v", err)
	}

	for _, value := range []string{"10", "25"} {
		err := module.ConfigureService.Execute(ctx, commands.UpsertConfigurationCommand{
			OwnerID: svc.ID,
			Name:    "rate_limit",
			Value:   value,
		})
		if err != nil {
			t.Fatalf("upsert %q failed: %v", value, err)
		}
	}

	entry, err := module.GetService.Execute("billing")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(entry.Configurations) != 1 {
		t.Fatalf("upsert must not duplicate entries, got %+v", entry.Configurations)
	}
	if entry.Configurations[0].Value != "25" {
		t.Fatalf("expected replaced value 25, got %q", entry.Configurations[0].Value)
	}
}

func TestAddKeyValidatesAlgorithm(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	app, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name: "console", SubDomain: "console", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create application failed: %v", err)
	}

	_, err = module.AddApplicationKey.Execute(ctx, commands.AddKeyCommand{
		OwnerID:   app.ID,
		Name:      "signing",
		PublicKey: "-----BEGIN PUBLIC KEY-----",
		Algorithm: "ROT13",
	})
	if err == nil {
		t.Fatalf("expected unknown algorithm to be rejected")
	}

	key, err := module.AddApplicationKey.Execute(ctx, commands.AddKeyCommand{
		OwnerID:   app.ID,
		Name:      "signing",
		PublicKey: "-----BEGIN PUBLIC KEY-----",
		Algorithm: "EdDSA",
		IsDefault: true,
	})
	if err != nil {
		t.Fatalf("add key failed: %v", err)
	}

	entry, err := module.GetApplication.Execute("console")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(entry.Keys) != 1 || entry.Keys[0].ID != key.ID {
		t.Fatalf("expected snapshot to carry the key, got %+v", entry.Keys)
	}
}

func TestDeleteRemovesFromSnapshot(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	svc, err := module.CreateService.Execute(ctx, commands.CreateServiceCommand{
		Name: "billing", SubDomain: "billing", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create service failed: %v", err)
	}

	if err := module.DeleteService.Execute(ctx, svc.ID); err != nil {
		t.Fatalf("delete service failed: %v", err)
	}
	if _, err := module.GetService.Execute("billing"); !errors.Is(err, domainerrors.ErrServiceNotFound) {
		t.Fatalf("expected service gone from snapshot, got %v", err)
	}
	if err := module.DeleteService.Execute(ctx, svc.ID); !errors.Is(err, domainerrors.ErrServiceNotFound) {
		t.Fatalf("expected second delete to report not found, got %v", err)
	}
}

func TestSnapshotIsImmutableAcrossReloads(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	if _, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name: "console", SubDomain: "console", IsActive: true,
	}); err != nil {
		t.Fatalf("create application failed: %v", err)
	}

	before := module.Catalog.Snapshot()
	if _, err := module.CreateApplication.Execute(ctx, commands.CreateApplicationCommand{
		Name: "portal", SubDomain: "portal", IsActive: true,
	}); err != nil {
		t.Fatalf("create application failed: %v", err)
	}

	if len(before.Applications) != 1 {
		t.Fatalf("published snapshot was mutated in place")
	}
	if len(module.Catalog.Snapshot().Applications) != 2 {
		t.Fatalf("expected fresh snapshot with both entries")
	}
}

func TestSnapshotEntryValuesStayFrozen(t *testing.T) {
	module := registry.NewInMemoryModule(nil)
	ctx := context.Background()

	svc, err := module.CreateService.Execute(ctx, commands.CreateServiceCommand{
		Name: "billing", SubDomain: "billing", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create service failed: %v", err)
	}
	if err := module.ConfigureService.Execute(ctx, commands.UpsertConfigurationCommand{
		OwnerID: svc.ID,
		Name:    "rate_limit",
		Value:   "10",
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	held := module.Catalog.Snapshot().Services["billing"]
	if err := module.ConfigureService.Execute(ctx, commands.UpsertConfigurationCommand{
		OwnerID: svc.ID,
		Name:    "rate_limit",
		Value:   "25",
	}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// A reader holding the previous snapshot keeps the value it loaded.
	if got := held.Configurations[0].Value; got != "10" {
		t.Fatalf("held snapshot entry changed in place, got %q", got)
	}
	fresh, err := module.GetService.Execute("billing")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if fresh.Configurations[0].Value != "25" {
		t.Fatalf("expected current snapshot to carry the new value, got %q", fresh.Configurations[0].Value)
	}
}
