package organisations_test

import (
	"context"
	"errors"
	"testing"

	organisations "janus/contexts/identity/organisations"
	"janus/contexts/identity/organisations/application/commands"
	domainerrors "janus/contexts/identity/organisations/domain/errors"
	"janus/contexts/identity/organisations/domain/valueobjects"
)

func TestCreateOrganisationSeedsOwnerMembership(t *testing.T) {
	module := organisations.NewInMemoryModule(nil)
	ctx := context.Background()

	org, err := module.CreateOrganisation.Execute(ctx, commands.CreateOrganisationCommand{
		Name:        "Acme",
		OwnerUserID: 100000000001,
		IsDefault:   true,
	})
	if err != nil {
		t.Fatalf("create organisation failed: %v", err)
	}

	memberships, err := module.ListUserOrganisations.Execute(ctx, 100000000001)
	if err != nil {
		t.Fatalf("list memberships failed: %v", err)
	}
	if len(memberships) != 1 {
		t.Fatalf("expected the owner membership, got %d", len(memberships))
	}
	if memberships[0].Organisation.ID != org.ID {
		t.Fatalf("membership points at organisation %d, expected %d", memberships[0].Organisation.ID, org.ID)
	}
	if memberships[0].Member.Role != valueobjects.MemberRoleOwner {
		t.Fatalf("expected OWNER role, got %s", memberships[0].Member.Role)
	}
	if !memberships[0].Member.IsDefault {
		t.Fatalf("expected default membership flag to carry through")
	}

	if _, err := module.CreateOrganisation.Execute(ctx, commands.CreateOrganisationCommand{OwnerUserID: 1}); !errors.Is(err, domainerrors.ErrNameRequired) {
		t.Fatalf("expected name required, got %v", err)
	}
}

func TestAddMember(t *testing.T) {
	module := organisations.NewInMemoryModule(nil)
	ctx := context.Background()

	org, err := module.CreateOrganisation.Execute(ctx, commands.CreateOrganisationCommand{
		Name:        "Acme",
		OwnerUserID: 1,
	})
	if err != nil {
		t.Fatalf("create organisation failed: %v", err)
	}

	err = module.AddMember.Execute(ctx, commands.AddMemberCommand{
		OrganisationID: org.ID,
		UserID:         2,
		Role:           "MEMBER",
	})
	if err != nil {
		t.Fatalf("add member failed: %v", err)
	}

	err = module.AddMember.Execute(ctx, commands.AddMemberCommand{
		OrganisationID: org.ID,
		UserID:         2,
		Role:           "ADMIN",
	})
	if !errors.Is(err, domainerrors.ErrAlreadyMember) {
		t.Fatalf("expected duplicate membership rejection, got %v", err)
	}

	err = module.AddMember.Execute(ctx, commands.AddMemberCommand{
		OrganisationID: org.ID + 50,
		UserID:         3,
		Role:           "MEMBER",
	})
	if !errors.Is(err, domainerrors.ErrOrganisationNotFound) {
		t.Fatalf("expected unknown organisation rejection, got %v", err)
	}

	err = module.AddMember.Execute(ctx, commands.AddMemberCommand{
		OrganisationID: org.ID,
		UserID:         4,
		Role:           "SUPERUSER",
	})
	if err == nil {
		t.Fatalf("expected unknown role to be rejected")
	}

	memberships, err := module.ListUserOrganisations.Execute(ctx, 2)
	if err != nil || len(memberships) != 1 {
		t.Fatalf("expected one membership for user 2, got %v %v", memberships, err)
	}
	if memberships[0].Member.Role != valueobjects.MemberRoleMember {
		t.Fatalf("expected MEMBER role, got %s", memberships[0].Member.Role)
	}

	if none, err := module.ListUserOrganisations.Execute(ctx, 99); err != nil || len(none) != 0 {
		t.Fatalf("expected empty result for unknown user, got %v %v", none, err)
	}
}
