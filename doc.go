// Package main provides the entry point for the Beacon content management
// service. It runs a web server using the Fiber framework that serves the
// foundation's public content (events, programs, news, videos, team,
// university courses, history) over a REST API and provides an administrative
// back office for editing that content, managing newsletter subscribers,
// volunteer applications and site-wide key/value settings. The application
// uses gorm for data persistence.
package main
