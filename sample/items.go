package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	dspAPI "github.com/sofmon/dispatch/lib/api"
	dspCtx "github.com/sofmon/dispatch/lib/ctx"
	dspMedia "github.com/sofmon/dispatch/lib/media"
	dspModel "github.com/sofmon/dispatch/lib/model"
	dspURI "github.com/sofmon/dispatch/lib/uri"
)

type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type store struct {
	db *sql.DB
}

func openStore(path string) (s *store, err error) {

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS "items" ("id" INTEGER PRIMARY KEY AUTOINCREMENT, "name" TEXT NOT NULL)`)
	if err != nil {
		db.Close()
		return
	}

	s = &store{db}

	return
}

func (s *store) Close() error {
	return s.db.Close()
}

// Declarations exposes the items resource: list and create at /items, and
// a locator handing each /items/{id} over to the single-item sub-resource.
func (s *store) Declarations() []dspModel.Declaration {

	jsonType := []dspMedia.MediaType{dspMedia.ApplicationJSON}

	return []dspModel.Declaration{
		{HTTPMethod: "GET", Path: "/items", Produces: jsonType, Invocable: listItems{s}},
		{HTTPMethod: "POST", Path: "/items", Consumes: jsonType, Produces: jsonType, Invocable: createItem{s}},
		{Path: "/items/{id}", Invocable: itemLocator{s}},
	}
}

type listItems struct{ store *store }

func (h listItems) ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values) {

	rows, err := h.store.db.QueryContext(ctx, `SELECT "id","name" FROM "items" ORDER BY "id"`)
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to list items", err)
		return
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var item Item
		if err = rows.Scan(&item.ID, &item.Name); err != nil {
			dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to read item", err)
			return
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to list items", err)
		return
	}

	dspAPI.ServeJSON(w, items)
}

type createItem struct{ store *store }

func (h createItem) ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values) {

	var item Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		dspAPI.ServeError(ctx, w, http.StatusBadRequest, dspAPI.ErrorCodeBadRequest, "unable to decode item", err)
		return
	}

	res, err := h.store.db.ExecContext(ctx, `INSERT INTO "items" ("name") VALUES ($1)`, item.Name)
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to store item", err)
		return
	}

	item.ID, err = res.LastInsertId()
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to store item", err)
		return
	}

	dspAPI.ServeJSON(w, item)
}

// itemLocator resolves /items/{id} into the sub-resource serving one item.
type itemLocator struct{ store *store }

func (l itemLocator) Locate(ctx dspCtx.Context, vars dspURI.Values) ([]dspModel.Declaration, error) {

	jsonType := []dspMedia.MediaType{dspMedia.ApplicationJSON}

	return []dspModel.Declaration{
		{HTTPMethod: "GET", Produces: jsonType, Invocable: getItem{l.store}},
		{HTTPMethod: "DELETE", Invocable: deleteItem{l.store}},
	}, nil
}

type getItem struct{ store *store }

func (h getItem) ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values) {

	id, err := strconv.ParseInt(vars.GetByKey("id"), 10, 64)
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusBadRequest, dspAPI.ErrorCodeBadRequest, "item id must be a number", err)
		return
	}

	var item Item
	err = h.store.db.
		QueryRowContext(ctx, `SELECT "id","name" FROM "items" WHERE "id"=$1`, id).
		Scan(&item.ID, &item.Name)
	if err == sql.ErrNoRows {
		dspAPI.ServeError(ctx, w, http.StatusNotFound, dspAPI.ErrorCodeNotFound, "item not found", nil)
		return
	}
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to read item", err)
		return
	}

	dspAPI.ServeJSON(w, item)
}

type deleteItem struct{ store *store }

func (h deleteItem) ServeMatch(ctx dspCtx.Context, w http.ResponseWriter, r *http.Request, vars dspURI.Values) {

	id, err := strconv.ParseInt(vars.GetByKey("id"), 10, 64)
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusBadRequest, dspAPI.ErrorCodeBadRequest, "item id must be a number", err)
		return
	}

	_, err = h.store.db.ExecContext(ctx, `DELETE FROM "items" WHERE "id"=$1`, id)
	if err != nil {
		dspAPI.ServeError(ctx, w, http.StatusInternalServerError, dspAPI.ErrorCodeInternalError, "unable to delete item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
