package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/vitalog/backend/internal/plans"
)

// PlansHandler serves the canned workout and meal plans
type PlansHandler struct{}

// NewPlansHandler creates a new PlansHandler
func NewPlansHandler() *PlansHandler {
	return &PlansHandler{}
}

// RegisterRoutes registers the plan routes
func (h *PlansHandler) RegisterRoutes(router *gin.RouterGroup) {
	p := router.Group("/plans")
	{
		p.GET("/workouts", h.ListWorkouts)
		p.GET("/workouts/:level", h.GetWorkout)
		p.GET("/meals", h.ListMeals)
		p.GET("/meals/:goal", h.GetMeal)
		p.GET("/programs", h.ListPrograms)
		p.GET("/programs/:goal", h.GetProgram)
	}
}

func (h *PlansHandler) ListWorkouts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"workouts": plans.WorkoutTemplates()})
}

func (h *PlansHandler) GetWorkout(c *gin.Context) {
	template, err := plans.WorkoutTemplateFor(c.Param("level"))
	if err != nil {
		respondError(c, err, "workout", "get workout")
		return
	}
	c.JSON(http.StatusOK, template)
}

func (h *PlansHandler) ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"meal_plans": plans.MealPlans()})
}

func (h *PlansHandler) GetMeal(c *gin.Context) {
	plan, err := plans.MealPlanFor(c.Param("goal"))
	if err != nil {
		respondError(c, err, "meal plan", "get meal plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *PlansHandler) ListPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programs": plans.GoalPrograms()})
}

func (h *PlansHandler) GetProgram(c *gin.Context) {
	program, err := plans.GoalProgramFor(c.Param("goal"))
	if err != nil {
		respondError(c, err, "program", "get program")
		return
	}
	c.JSON(http.StatusOK, program)
}
