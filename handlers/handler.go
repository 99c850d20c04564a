// Package handlers contains the HTTP handlers for every page of the site.
// Each handler translates request input into one store call and returns the
// page data as JSON for the view layer; form posts redirect on success like
// the classic server-rendered flow.
package handlers

import "go-climate-backend/store"

type Handler struct {
	Articles *store.ArticleStore
	Users    *store.UserStore
}

func New(articles *store.ArticleStore, users *store.UserStore) *Handler {
	return &Handler{Articles: articles, Users: users}
}
