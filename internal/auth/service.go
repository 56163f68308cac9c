package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "medtime/internal/errors"
	"medtime/internal/validation"
)

// Service implements the mock account and team operations. Each call sleeps
// for a configurable latency to simulate a remote identity backend; tests set
// it to zero.
type Service struct {
	directory Directory
	tokens    *TokenIssuer
	log       *zap.Logger
	latency   time.Duration
}

// NewService creates the auth service.
func NewService(directory Directory, tokens *TokenIssuer, log *zap.Logger, latency time.Duration) *Service {
	return &Service{
		directory: directory,
		tokens:    tokens,
		log:       log,
		latency:   latency,
	}
}

// simulateLatency blocks for the configured artificial delay, honoring
// context cancellation.
func (s *Service) simulateLatency(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login authenticates by email. The mock directory accepts any password for
// a known email.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Session{}, err
	}

	user, ok := s.directory.FindUserByEmail(email)
	if !ok {
		return Session{}, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return Session{
		User:   user,
		Groups: s.directory.FindGroupsByIDs(user.GroupIDs),
		Token:  token,
	}, nil
}

// Signup registers a new account and logs it in.
func (s *Service) Signup(ctx context.Context, name, email, password, role string) (Session, error) {
	if err := validateSignup(name, email, role); err != nil {
		return Session{}, err
	}
	if err := s.simulateLatency(ctx); err != nil {
		return Session{}, err
	}

	if _, exists := s.directory.FindUserByEmail(email); exists {
		return Session{}, apperrors.NewConflictError("Email already taken")
	}

	user := User{
		ID:    "user-" + uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  role,
	}
	s.directory.InsertUser(user)

	token, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}

	s.log.Info("user signed up", zap.String("user_id", user.ID))
	return Session{User: user, Groups: nil, Token: token}, nil
}

// VerifyToken resolves a session token to its user.
func (s *Service) VerifyToken(tokenString string) (User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return User{}, err
	}
	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return User{}, apperrors.NewUnauthorizedError("session user no longer exists")
	}
	return user, nil
}

// CreateGroup creates a team owned by the user and joins them to it.
func (s *Service) CreateGroup(ctx context.Context, userID, name, department, passcode string) (Group, error) {
	if err := validateGroup(name, passcode); err != nil {
		return Group{}, err
	}
	if err := s.simulateLatency(ctx); err != nil {
		return Group{}, err
	}

	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return Group{}, apperrors.NewNotFoundError("user", userID)
	}

	group := Group{
		ID:         "group-" + uuid.NewString(),
		Name:       name,
		Passcode:   passcode,
		Department: department,
		CreatedBy:  user.ID,
		Members:    []User{user},
		CreatedAt:  time.Now().UTC(),
	}
	s.directory.InsertGroup(group)

	user.GroupIDs = append(user.GroupIDs, group.ID)
	s.directory.UpdateUser(user)

	s.log.Info("group created", zap.String("group_id", group.ID), zap.String("user_id", user.ID))
	return group, nil
}

// JoinGroup adds the user to a group after checking its passcode.
func (s *Service) JoinGroup(ctx context.Context, userID, groupID, passcode string) (Group, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return Group{}, err
	}

	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return Group{}, apperrors.NewNotFoundError("user", userID)
	}
	group, ok := s.directory.FindGroupByID(groupID)
	if !ok {
		return Group{}, apperrors.NewNotFoundError("group", groupID)
	}
	if group.Passcode != passcode {
		return Group{}, apperrors.NewUnauthorizedError("Invalid passcode")
	}
	for _, member := range group.Members {
		if member.ID == user.ID {
			return Group{}, apperrors.NewConflictError("You are already a member of this group")
		}
	}

	group.Members = append(group.Members, user)
	s.directory.UpdateGroup(group)

	user.GroupIDs = append(user.GroupIDs, group.ID)
	s.directory.UpdateUser(user)

	s.log.Info("user joined group", zap.String("group_id", group.ID), zap.String("user_id", user.ID))
	return group, nil
}

// LeaveGroup removes the user from a group.
func (s *Service) LeaveGroup(ctx context.Context, userID, groupID string) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return apperrors.NewNotFoundError("user", userID)
	}
	group, ok := s.directory.FindGroupByID(groupID)
	if !ok {
		return apperrors.NewNotFoundError("group", groupID)
	}

	isMember := false
	remaining := group.Members[:0:0]
	for _, member := range group.Members {
		if member.ID == user.ID {
			isMember = true
			continue
		}
		remaining = append(remaining, member)
	}
	if !isMember {
		return apperrors.NewConflictError("You are not a member of this group")
	}

	group.Members = remaining
	s.directory.UpdateGroup(group)

	user.GroupIDs = removeID(user.GroupIDs, group.ID)
	s.directory.UpdateUser(user)

	s.log.Info("user left group", zap.String("group_id", group.ID), zap.String("user_id", user.ID))
	return nil
}

// DeleteGroup removes a group entirely. Only its creator may delete it; the
// group is detached from every member.
func (s *Service) DeleteGroup(ctx context.Context, userID, groupID string) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	group, ok := s.directory.FindGroupByID(groupID)
	if !ok {
		return apperrors.NewNotFoundError("group", groupID)
	}
	if group.CreatedBy != userID {
		return apperrors.NewPermissionError("delete", fmt.Sprintf("group %s", groupID))
	}

	for _, member := range group.Members {
		if user, ok := s.directory.FindUserByID(member.ID); ok {
			user.GroupIDs = removeID(user.GroupIDs, group.ID)
			s.directory.UpdateUser(user)
		}
	}
	s.directory.RemoveGroup(group.ID)

	s.log.Info("group deleted", zap.String("group_id", group.ID), zap.String("user_id", userID))
	return nil
}

// UpdateProfile applies a partial profile update and returns the new user.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfilePatch) (User, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return User{}, err
	}

	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return User{}, apperrors.NewNotFoundError("user", userID)
	}

	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Department != nil {
		user.Department = *patch.Department
	}
	if patch.ProfileImage != nil {
		user.ProfileImage = *patch.ProfileImage
	}
	s.directory.UpdateUser(user)

	return user, nil
}

// Groups returns the groups the user belongs to.
func (s *Service) Groups(userID string) ([]Group, error) {
	user, ok := s.directory.FindUserByID(userID)
	if !ok {
		return nil, apperrors.NewNotFoundError("user", userID)
	}
	return s.directory.FindGroupsByIDs(user.GroupIDs), nil
}

func validateSignup(name, email, role string) error {
	validationError := validation.NewValidationError()
	if strings.TrimSpace(name) == "" {
		validationError.AddRequiredError("name")
	}
	if strings.TrimSpace(email) == "" {
		validationError.AddRequiredError("email")
	} else if !strings.Contains(email, "@") {
		validationError.AddInvalidFormatError("email", email, "email address")
	}
	if strings.TrimSpace(role) == "" {
		validationError.AddRequiredError("role")
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func validateGroup(name, passcode string) error {
	validationError := validation.NewValidationError()
	if strings.TrimSpace(name) == "" {
		validationError.AddRequiredError("name")
	}
	if strings.TrimSpace(passcode) == "" {
		validationError.AddRequiredError("passcode")
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

func removeID(ids []string, id string) []string {
	kept := ids[:0:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return kept
}
