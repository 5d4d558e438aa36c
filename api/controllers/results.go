package controllers

import (
	"net/http"

	"github.com/Dinhh-Chan/aic-judges/api/models"
	"github.com/Dinhh-Chan/aic-judges/api/transport"
	"github.com/Dinhh-Chan/aic-judges/scoring"
	"github.com/Dinhh-Chan/aic-judges/storage"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	scoresStorage storage.ScoreStorage
	teamsStorage  storage.TeamStorage
	staticBaseURL string
	teamLimit     int
}

func NewResultsController(scoreStorage storage.ScoreStorage, teamStorage storage.TeamStorage, staticBaseURL string, teamLimit int) *ResultsController {
	return &ResultsController{
		scoresStorage: scoreStorage,
		teamsStorage:  teamStorage,
		staticBaseURL: staticBaseURL,
		teamLimit:     teamLimit,
	}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/", c.results)
	engine.GET("/results", c.results)
}

// results godoc
// @Summary Final ranking
// @Description The three teams with the highest final score, in descending order
// @Tags results
// @Produce html,json
// @Success 200 {object} models.ResultsView
// @Failure 502 {object} models.ResultsView "Ranking or teams could not be loaded"
// @Router /results [get]
func (c *ResultsController) results(g *gin.Context) {
	podium, err := scoring.LoadPodium(g.Request.Context(), c.scoresStorage, c.teamsStorage, c.teamLimit, c.staticBaseURL)
	if err != nil {
		transport.Render(g, http.StatusBadGateway, "results.html", &models.ResultsView{
			Podium: []scoring.PodiumEntry{},
			Error:  "Không thể tải kết quả",
		})
		return
	}
	transport.Render(g, http.StatusOK, "results.html", &models.ResultsView{Podium: podium})
}
