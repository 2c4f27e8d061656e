package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/RanchoCooper/go-hexagonal/application/service"
	"github.com/RanchoCooper/go-hexagonal/domain/model"
	"github.com/RanchoCooper/go-hexagonal/domain/repo"
)

// ExampleController exposes the Example application service over REST:
//
//	GET    /examples            list (?active=true filters)
//	POST   /examples            create
//	GET    /examples/{id}       show
//	PUT    /examples/{id}       update
//	DELETE /examples/{id}       destroy
type ExampleController struct {
	app *service.ExampleAppService
}

// NewExampleController creates the controller.
func NewExampleController(app *service.ExampleAppService) *ExampleController {
	return &ExampleController{app: app}
}

// Mount registers the controller's routes on r.
func (c *ExampleController) Mount(r *Router) {
	r.Prefix("/examples", func(er *Router) {
		er.Get("/", c.Index)
		er.Post("/", c.Store)
		er.Get("/{id}", c.Show)
		er.Put("/{id}", c.Update)
		er.Delete("/{id}", c.Destroy)
	})
}

type examplePayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p examplePayload) data() map[string]string {
	return map[string]string{"name": p.Name, "description": p.Description}
}

func (c *ExampleController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		examples []*model.Example
		err      error
	)
	if r.URL.Query().Get("active") == "true" {
		examples, err = c.app.ListActive(r.Context())
	} else {
		examples, err = c.app.List(r.Context())
	}
	if err != nil {
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	Success(w, examples)
}

func (c *ExampleController) Store(w http.ResponseWriter, r *http.Request) {
	var body examplePayload
	if err := bindJSON(r, &body); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs := Validate(body.data(), Rules{
		"name":        "required|max:255",
		"description": "max:1000",
	}); errs.Has() {
		Invalid(w, errs)
		return
	}

	example, err := c.app.Create(r.Context(), body.Name, body.Description)
	switch {
	case errors.Is(err, model.ErrEmptyName):
		Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repo.ErrDuplicateName):
		Error(w, http.StatusConflict, err.Error())
	case err != nil:
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		Created(w, example)
	}
}

func (c *ExampleController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	example, err := c.app.Get(r.Context(), id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case err != nil:
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		Success(w, example)
	}
}

func (c *ExampleController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	var body examplePayload
	if err := bindJSON(r, &body); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs := Validate(body.data(), Rules{
		"name":        "sometimes|max:255",
		"description": "max:1000",
	}); errs.Has() {
		Invalid(w, errs)
		return
	}

	example, err := c.app.Update(r.Context(), id, body.Name, body.Description)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repo.ErrDuplicateName):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrEmptyName):
		Error(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		Success(w, example)
	}
}

func (c *ExampleController) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := c.parseID(w, r)
	if !ok {
		return
	}
	err := c.app.Delete(r.Context(), id)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case err != nil:
		Error(w, http.StatusInternalServerError, err.Error())
	default:
		NoContent(w)
	}
}

func (c *ExampleController) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(Param(r, "id"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid example id")
		return uuid.Nil, false
	}
	return id, true
}
