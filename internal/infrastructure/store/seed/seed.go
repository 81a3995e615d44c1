// Package seed loads the records every fresh deployment needs: the
// bootstrap administrator and the service catalog. It works against the
// ports interfaces, so the memory and mongo backings share it. Seeding is
// idempotent — existing records are left alone.
package seed

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/floctet/studio-api/internal/core/domain"
	"github.com/floctet/studio-api/internal/core/ports"
)

// Admin creates the bootstrap administrator as an ordinary user record.
// Seeding it into the store keeps the login path free of special cases: the
// admin authenticates exactly like everyone else, bcrypt hash included.
func Admin(ctx context.Context, users ports.UserRepository, username, password, email string) error {
	if _, err := users.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Email:        email,
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}

// Services loads the studio's service catalog if it is empty.
func Services(ctx context.Context, services ports.ServiceRepository) error {
	existing, err := services.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	catalog := []domain.Service{
		{
			Title:       "Website Design",
			Description: "Custom responsive website design with modern UI/UX principles and retro-futuristic aesthetics.",
			Price:       "From $499",
			Icon:        "ri-code-s-slash-line",
			IconClass:   "bg-[hsl(var(--primary))]/10 text-[hsl(var(--primary))]",
		},
		{
			Title:       "Full-Stack Development",
			Description: "End-to-end web application development with modern frameworks and scalable architecture.",
			Price:       "From $999",
			Icon:        "ri-stack-line",
			IconClass:   "bg-[hsl(var(--secondary))]/10 text-[hsl(var(--secondary))]",
		},
		{
			Title:       "Mobile App Development",
			Description: "Native and cross-platform mobile applications with cutting-edge features and smooth performance.",
			Price:       "From $1299",
			Icon:        "ri-smartphone-line",
			IconClass:   "bg-[hsl(var(--accent))]/10 text-[hsl(var(--accent))]",
		},
		{
			Title:       "AI Development",
			Description: "Custom AI solutions, machine learning models, and intelligent automation for your business.",
			Price:       "From $1499",
			Icon:        "ri-ai-generate",
			IconClass:   "bg-purple-600/10 text-purple-600",
		},
		{
			Title:       "Bug Bounty Hunting",
			Description: "Professional security testing and vulnerability assessments to protect your digital assets.",
			Price:       "From $799",
			Icon:        "ri-bug-line",
			IconClass:   "bg-red-600/10 text-red-600",
		},
		{
			Title:       "API Integration",
			Description: "Seamless integration of third-party APIs and development of custom RESTful services.",
			Price:       "From $699",
			Icon:        "ri-code-box-line",
			IconClass:   "bg-blue-600/10 text-blue-600",
		},
	}

	for i := range catalog {
		if _, err := services.Create(ctx, &catalog[i]); err != nil {
			return err
		}
	}
	return nil
}
