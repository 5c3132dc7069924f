package services

import "net/url"

// Location provides the current page address, including its query string.
type Location interface {
	Href() string
}

// StaticLocation is a fixed page address.
type StaticLocation string

func (l StaticLocation) Href() string { return string(l) }

// LocationFunc adapts a function to Location.
type LocationFunc func() string

func (f LocationFunc) Href() string { return f() }

// Attribution carries the marketing fields forwarded with a submission.
type Attribution struct {
	Source   string
	Medium   string
	Campaign string
	Term     string
	Content  string
	PageURL  string
}

// CaptureAttribution reads the utm_* parameters from href. Missing parameters and
// unparsable addresses yield empty strings; PageURL is always href itself.
func CaptureAttribution(href string) Attribution {
	a := Attribution{PageURL: href}
	u, err := url.Parse(href)
	if err != nil {
		return a
	}
	q := u.Query()
	a.Source = q.Get("utm_source")
	a.Medium = q.Get("utm_medium")
	a.Campaign = q.Get("utm_campaign")
	a.Term = q.Get("utm_term")
	a.Content = q.Get("utm_content")
	return a
}

// Fields returns the attribution in wire order.
func (a Attribution) Fields() []Field {
	return []Field{
		{Key: "utm_source", Value: a.Source},
		{Key: "utm_medium", Value: a.Medium},
		{Key: "utm_campaign", Value: a.Campaign},
		{Key: "utm_term", Value: a.Term},
		{Key: "utm_content", Value: a.Content},
		{Key: "page_url", Value: a.PageURL},
	}
}
