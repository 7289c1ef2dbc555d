package service

import (
	"context"
	"errors"

	"github.com/flipr/sitepanel"
	"github.com/flipr/sitepanel/types"
	"golang.org/x/sync/errgroup"
)

// PublicPage loads projects and clients concurrently and builds the card
// containers. A failure of one does not affect the other.
func (s *Service) PublicPage(ctx context.Context) *PublicPage {
	page := &PublicPage{}

	var g errgroup.Group
	g.Go(func() error {
		page.Projects = s.ProjectCards(ctx)
		return nil
	})
	g.Go(func() error {
		page.Clients = s.ClientCards(ctx)
		return nil
	})
	_ = g.Wait()

	return page
}

// ProjectCards fetches projects and renders them as public cards.
func (s *Service) ProjectCards(ctx context.Context) ProjectCards {
	var projects []types.Project
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Projects}, &projects); err != nil {
		s.logWarn("failed to fetch projects", err)
		return ProjectCards{Error: ProjectsLoadFailedPublic}
	}
	if len(projects) == 0 {
		return ProjectCards{Empty: ProjectsEmptyPublic}
	}

	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, ProjectCard{
			ID:          p.ID,
			Name:        p.Name,
			Description: orDefault(p.Description, DefaultProjectDescription),
			Image:       orDefault(p.Image, DefaultProjectImage),
			Category:    orDefault(p.Category, DefaultProjectCategory),
			Location:    orDefault(p.Location, DefaultProjectLocation),
		})
	}
	return ProjectCards{Cards: cards}
}

// ClientCards fetches client testimonials and renders them as public cards.
func (s *Service) ClientCards(ctx context.Context) ClientCards {
	var clients []types.Client
	if err := s.Dispatch(ctx, LoadAction{Collection: sitepanel.Clients}, &clients); err != nil {
		s.logWarn("failed to fetch clients", err)
		return ClientCards{Error: ClientsLoadFailedPublic}
	}
	if len(clients) == 0 {
		return ClientCards{Empty: ClientsEmptyPublic}
	}

	cards := make([]ClientCard, 0, len(clients))
	for _, c := range clients {
		cards = append(cards, ClientCard{
			Name:        c.Name,
			Designation: c.Designation,
			Description: orDefault(c.Description, DefaultClientDescription),
			Image:       orDefault(c.Image, DefaultClientImage),
		})
	}
	return ClientCards{Cards: cards}
}

// SubmitContact sends the contact form.
//
// Server-answered outcomes auto-hide after FlashDuration; a network failure
// stays visible. The form is cleared only on success.
func (s *Service) SubmitContact(ctx context.Context, a ContactAction) *Result {
	err := s.Dispatch(ctx, a, nil)
	switch {
	case err == nil:
		return &Result{
			OK:        true,
			Planned:   true,
			ClearForm: true,
			Flash:     &Flash{Type: FlashSuccess, Message: ContactSuccessMessage, AutoHide: s.config.FlashDuration},
		}
	case errors.Is(err, sitepanel.ErrNetwork):
		s.logWarn("error submitting contact form", err)
		return &Result{
			Planned: true,
			Flash:   &Flash{Type: FlashError, Message: NetworkErrorMessage},
		}
	default:
		s.logWarn("contact form rejected", err)
		return &Result{
			Planned: true,
			Flash: &Flash{
				Type:     FlashError,
				Message:  "Error: " + sitepanel.ServerMessage(err, ContactFailureFallback),
				AutoHide: s.config.FlashDuration,
			},
		}
	}
}

// Subscribe signs an email up for the newsletter.
// Invalid emails are rejected without contacting the API. Every newsletter
// message auto-hides after FlashDuration.
func (s *Service) Subscribe(ctx context.Context, a SubscribeAction) *Result {
	err := s.Dispatch(ctx, a, nil)
	switch {
	case err == nil:
		return &Result{
			OK:        true,
			Planned:   true,
			ClearForm: true,
			Flash:     s.newsletterFlash(FlashSuccess, NewsletterSuccessMessage),
		}
	case errors.Is(err, ErrInvalidEmail):
		return &Result{Flash: s.newsletterFlash(FlashError, NewsletterInvalidMessage)}
	case errors.Is(err, sitepanel.ErrNetwork):
		s.logWarn("error subscribing to newsletter", err)
		return &Result{Planned: true, Flash: s.newsletterFlash(FlashError, NetworkErrorMessage)}
	default:
		s.logWarn("newsletter subscription rejected", err)
		return &Result{
			Planned: true,
			Flash:   s.newsletterFlash(FlashError, sitepanel.ServerMessage(err, NewsletterFailureFallback)),
		}
	}
}

func (s *Service) newsletterFlash(t FlashType, msg string) *Flash {
	return &Flash{Type: t, Message: msg, AutoHide: s.config.FlashDuration}
}
