package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rmaulika/folio/nav"
	"github.com/rmaulika/folio/views"
)

// isNavPartial reports whether a /nav/ request wants only the nav bar back.
func isNavPartial(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true" || c.QueryParam("partial") == "nav"
}

// handleHome renders the page. ?menu=open renders the mobile overlay open,
// for browsers without JavaScript; ?partial=nav renders only the nav bar.
func (a *App) handleHome(c echo.Context) error {
	menu := nav.ParseState(c.QueryParam("menu"))
	if c.QueryParam("partial") == "nav" {
		return Render(c, views.NavPartial(a.Content, menu))
	}
	return Render(c, views.Page(a.Site(), a.Content, menu, a.now().Year()))
}

// handleNav applies one menu event to the state carried in the query and
// either redirects to the page in the new state or renders the new nav bar.
func (a *App) handleNav(c echo.Context) error {
	state := nav.ParseState(c.QueryParam("state"))
	ev, ok := nav.ParseEvent(c.QueryParam("event"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown menu event")
	}
	next := nav.Next(state, ev)

	if isNavPartial(c) {
		return Render(c, views.NavPartial(a.Content, next))
	}
	if next == nav.Open {
		return c.Redirect(http.StatusSeeOther, "/?menu=open#site-nav")
	}
	return c.Redirect(http.StatusSeeOther, "/"+anchorOnly(c.QueryParam("href")))
}

func (a *App) handleAsset(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		asset, err := a.Assets.Get(name)
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, asset.ContentType, asset.Body)
	}
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Site()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError(a.Site()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
