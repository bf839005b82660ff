package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVerifyFarmerCommandHandler_Handle_TogglesVerification(t *testing.T) {
	tests := []struct {
		name      string
		initially bool
		verified  bool
		title     string
	}{
		{name: "grant", initially: false, verified: true, title: "Account Verified"},
		{name: "revoke", initially: true, verified: false, title: "Account Verification Revoked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			admin := newUser(t, "admin", user.Admin, false)
			farmer := newUser(t, "farmer", user.Farmer, tt.initially)

			users, uow, sink := new(MockUserRepository), new(MockUoW), new(MockSink)
			mock.InOrder(
				uow.On("Begin", mock.Anything).Return(nil).Once(),
				uow.On("UserRepository").Return(users).Once(),
				users.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once(),
				users.On("Get", mock.Anything, farmer.ID()).Return(farmer, nil).Once(),
				users.On("Update", mock.Anything, farmer).Return(nil).Once(),
				uow.On("Commit", mock.Anything).Return(nil).Once(),
			)
			uow.On("Rollback", mock.Anything).Return(nil).Once()
			sink.On("Notify", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
				return n.UserID().IsEqual(farmer.ID()) &&
					n.Type() == notification.TypeAdmin &&
					n.Title() == tt.title &&
					n.Metadata()["verified"] == tt.verified &&
					n.Metadata()["verified_by"] == admin.ID().String()
			})).Return(nil).Once()

			cmd, err := commands.NewVerifyFarmerCommand(farmer.ID(), admin.ID(), tt.verified)
			require.NoError(t, err)

			h := commands.NewVerifyFarmerCommandHandler(MockUserUoWFactory{uow: uow}, sink, discardLogger())
			updated, err := h.Handle(ctx, cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.verified, updated.IsVerified())

			uow.AssertExpectations(t)
			users.AssertExpectations(t)
			sink.AssertExpectations(t)
		})
	}
}

func TestVerifyFarmerCommandHandler_Handle_RequiresAdmin(t *testing.T) {
	for _, role := range []user.Role{user.Buyer, user.Farmer} {
		t.Run(role.String(), func(t *testing.T) {
			actor := newUser(t, "actor", role, true)

			users, uow := new(MockUserRepository), new(MockUoW)
			uow.On("Begin", mock.Anything).Return(nil).Once()
			uow.On("UserRepository").Return(users).Once()
			users.On("Get", mock.Anything, actor.ID()).Return(actor, nil).Once()
			uow.On("Rollback", mock.Anything).Return(nil).Once()

			cmd, err := commands.NewVerifyFarmerCommand(kernel.NewUUID(), actor.ID(), true)
			require.NoError(t, err)

			h := commands.NewVerifyFarmerCommandHandler(MockUserUoWFactory{uow: uow}, new(MockSink), discardLogger())
			_, err = h.Handle(t.Context(), cmd)
			require.ErrorIs(t, err, user.ErrForbiddenRole)
			users.AssertExpectations(t)
		})
	}
}

func TestVerifyFarmerCommandHandler_Handle_TargetMustBeFarmer(t *testing.T) {
	admin := newUser(t, "admin", user.Admin, false)
	buyer := newUser(t, "buyer", user.Buyer, false)

	users, uow := new(MockUserRepository), new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once()
	users.On("Get", mock.Anything, buyer.ID()).Return(buyer, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewVerifyFarmerCommand(buyer.ID(), admin.ID(), true)
	require.NoError(t, err)

	h := commands.NewVerifyFarmerCommandHandler(MockUserUoWFactory{uow: uow}, new(MockSink), discardLogger())
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVerifyFarmerCommandHandler_Handle_FarmerNotFound(t *testing.T) {
	admin := newUser(t, "admin", user.Admin, false)
	missing := kernel.NewUUID()

	users, uow := new(MockUserRepository), new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("UserRepository").Return(users).Once()
	users.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once()
	users.On("Get", mock.Anything, missing).Return(nil, errs.NewObjectNotFoundError("user", missing.String())).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	cmd, err := commands.NewVerifyFarmerCommand(missing, admin.ID(), true)
	require.NoError(t, err)

	h := commands.NewVerifyFarmerCommandHandler(MockUserUoWFactory{uow: uow}, new(MockSink), discardLogger())
	_, err = h.Handle(t.Context(), cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
