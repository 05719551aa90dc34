package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrEmptyTitle       = errors.New("empty title")
	ErrInvalidRoute     = errors.New("invalid route")
	ErrInvalidURL       = errors.New("invalid external url")
	ErrEmptyDestination = errors.New("empty destination")
)

// ValidateRoute checks that route is a site-internal path such as
// "./docs/intro" or "/docs/intro". Schemes and hosts are rejected.
func ValidateRoute(route string) error {
	if route == "" {
		return ErrEmptyDestination
	}
	if strings.ContainsAny(route, " \t\r\n") {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidRoute, route)
	}
	u, err := url.Parse(route)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRoute, route, err)
	}
	if u.Scheme != "" || u.Host != "" {
		return fmt.Errorf("%w: %q is not site-internal", ErrInvalidRoute, route)
	}
	if !strings.HasPrefix(u.Path, "./") && !strings.HasPrefix(u.Path, "/") {
		return fmt.Errorf("%w: %q must start with ./ or /", ErrInvalidRoute, route)
	}
	return nil
}

// ValidateExternalURL checks that raw is an absolute http(s) URL with a host.
func ValidateExternalURL(raw string) error {
	if raw == "" {
		return ErrEmptyDestination
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %q must use http or https", ErrInvalidURL, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %q has no host", ErrInvalidURL, raw)
	}
	return nil
}

// ValidateGuides reports every malformed entry of entries.
func ValidateGuides(entries []GuideEntry) error {
	var errs []error
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("guide %d: %w", i, ErrEmptyTitle))
		}
		if err := ValidateRoute(e.Destination); err != nil {
			errs = append(errs, fmt.Errorf("guide %d (%s): %w", i, e.Title, err))
		}
	}
	return errors.Join(errs...)
}

// ValidateExternalLinks reports every malformed entry of entries.
func ValidateExternalLinks(entries []ExternalLinkEntry) error {
	var errs []error
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			errs = append(errs, fmt.Errorf("link %d: %w", i, ErrEmptyTitle))
		}
		if err := ValidateExternalURL(e.Destination); err != nil {
			errs = append(errs, fmt.Errorf("link %d (%s): %w", i, e.Title, err))
		}
	}
	return errors.Join(errs...)
}
