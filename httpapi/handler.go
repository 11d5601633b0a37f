// Package httpapi exposes the tourney engine and storedb snapshot store
// over a small JSON API, using a Handler-struct-plus-RegisterHandlers shape
// so routes can be wired onto any echo.Group.
package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bracketforge/bracketforge/adminauth"
	"github.com/bracketforge/bracketforge/storedb"
	"github.com/bracketforge/bracketforge/taskqueue"
	"github.com/bracketforge/bracketforge/tourney"
)

type Handler struct {
	store *storedb.Store
	authr *adminauth.Authenticator
	queue *taskqueue.Queue
}

func NewHandler(store *storedb.Store, authr *adminauth.Authenticator, queue *taskqueue.Queue) *Handler {
	return &Handler{store: store, authr: authr, queue: queue}
}

func (h *Handler) RegisterHandlers(g *echo.Group) {
	g.POST("/login", h.postLogin)
	g.GET("/tournaments/:id", h.getTournament)

	admin := g.Group("", h.authr.RequireAdmin())
	admin.POST("/tournaments", h.postTournaments)
	admin.POST("/tournaments/:id/matches", h.postMatches)
}

func fail(c echo.Context, err error) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("httpapi: unhandled error", "error", err)
	}
	return c.JSON(status, map[string]string{"message": err.Error()})
}

type postLoginRequest struct {
	AdminKey string `json:"admin_key"`
}

func (h *Handler) postLogin(c echo.Context) error {
	var req postLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, err := h.authr.Login(req.AdminKey)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

type rulesJSON struct {
	Kind        string `json:"kind"`
	Elimination string `json:"elimination,omitempty"`
	GroupSize   int    `json:"group_size,omitempty"`
	Advance     int    `json:"advance,omitempty"`
}

func parseRules(r rulesJSON) (tourney.Rules, error) {
	switch r.Kind {
	case "duel":
		e := tourney.Single
		if r.Elimination == "Double" {
			e = tourney.Double
		}
		return tourney.DuelRules{Elimination: e}, nil
	case "ffa":
		return tourney.FFARules{GroupSize: r.GroupSize, Advance: r.Advance}, nil
	default:
		return nil, fmt.Errorf("httpapi: unknown rules kind %q", r.Kind)
	}
}

type postTournamentsRequest struct {
	Rules rulesJSON `json:"rules"`
	Size  int       `json:"size"`
}

func (h *Handler) postTournaments(c echo.Context) error {
	var req postTournamentsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	rules, err := parseRules(req.Rules)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, tour, err := h.store.Create(c.Request().Context(), rules, req.Size)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, tour)
}

func parseTournamentID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *Handler) getTournament(c echo.Context) error {
	id, err := parseTournamentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tournament id")
	}

	tour, err := h.store.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, tour)
}

type postMatchesRequest struct {
	Bracket string `json:"bracket"`
	Round   int    `json:"round"`
	Game    int    `json:"game"`
	Scores  []int  `json:"scores"`
}

func (h *Handler) postMatches(c echo.Context) error {
	id, err := parseTournamentID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid tournament id")
	}

	var req postMatchesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	bracket := tourney.WB
	if req.Bracket == "LB" {
		bracket = tourney.LB
	}
	mid := tourney.MatchID{Bracket: bracket, Round: req.Round, Game: req.Game}

	ctx := c.Request().Context()
	before, err := h.store.Get(ctx, id)
	if err != nil {
		return fail(c, err)
	}

	after, err := tourney.Score(mid, req.Scores, before)
	if err != nil {
		return fail(c, err)
	}

	if err := h.store.Save(ctx, id, after); err != nil {
		return fail(c, err)
	}

	_, hadResults := before.Results()
	_, hasResults := after.Results()
	if hasResults && !hadResults {
		if err := h.enqueueFinalize(ctx, id); err != nil {
			slog.Error("httpapi: failed to enqueue finalize task", "tournament_id", id, "error", err)
		}
	}

	return c.JSON(http.StatusOK, after)
}

func (h *Handler) enqueueFinalize(_ context.Context, id int64) error {
	return h.queue.EnqueueFinalizeTournament(id)
}
