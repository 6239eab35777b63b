package projects

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"steelworks-backend/internal/audit"
	"steelworks-backend/internal/cache"
	"steelworks-backend/internal/database"
	"steelworks-backend/internal/models"
)

const EntityProjects = "projects"

type CreateProjectRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	Budget      *float64 `json:"budget"`
	Client      string   `json:"client"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Active      *bool    `json:"active"`
	Featured    *bool    `json:"featured"`
}

type UpdateProjectRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Budget      *float64 `json:"budget"`
	Client      *string  `json:"client"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	Active      *bool    `json:"active"`
	Featured    *bool    `json:"featured"`
}

// GET /api/projects
// Active projects only, newest first.
func ListPublicProjectsHandler(qc *cache.Cache) fiber.Handler {
	key := cache.Key(EntityProjects, "public")
	return func(c *fiber.Ctx) error {
		if cached, ok := qc.Get(key); ok {
			return c.JSON(cached)
		}

		var projects []models.Project
		if err := database.DB.
			Where("active = ?", true).
			Order("created_at desc").
			Find(&projects).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projects could not be listed")
		}

		qc.Set(key, projects)
		return c.JSON(projects)
	}
}

// GET /api/admin/projects (inactive projects included)
func ListProjectsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var projects []models.Project
		if err := database.DB.Order("created_at desc").Find(&projects).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Projects could not be listed")
		}
		return c.JSON(projects)
	}
}

// POST /api/admin/projects
func CreateProjectHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		body.Name = strings.TrimSpace(body.Name)
		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}
		if body.Budget != nil && *body.Budget < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Budget cannot be negative")
		}

		startDate, err := models.NormalizeDate(body.StartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Start date must be YYYY-MM-DD")
		}
		endDate, err := models.NormalizeDate(body.EndDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "End date must be YYYY-MM-DD")
		}

		p := models.Project{
			Name:        body.Name,
			Description: models.NormalizeString(body.Description),
			Status:      models.NormalizeString(body.Status),
			Budget:      body.Budget,
			Client:      models.NormalizeString(body.Client),
			Category:    models.NormalizeString(body.Category),
			ImageURL:    models.NormalizeString(body.ImageURL),
			StartDate:   startDate,
			EndDate:     endDate,
			Active:      true,
			Featured:    false,
		}
		if body.Active != nil {
			p.Active = *body.Active
		}
		if body.Featured != nil {
			p.Featured = *body.Featured
		}

		if err := database.DB.Create(&p).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Project could not be created")
		}

		qc.Invalidate(EntityProjects)
		audit.Record(c, EntityProjects, p.ID, models.AuditCreate, p)

		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// PUT /api/admin/projects/:id
func UpdateProjectHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}

		var body UpdateProjectRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updates := map[string]any{}
		if body.Name != nil {
			name := strings.TrimSpace(*body.Name)
			if name == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Name cannot be empty")
			}
			updates["name"] = name
		}
		if body.Description != nil {
			updates["description"] = models.NormalizeString(*body.Description)
		}
		if body.Status != nil {
			updates["status"] = models.NormalizeString(*body.Status)
		}
		if body.Budget != nil {
			if *body.Budget < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Budget cannot be negative")
			}
			updates["budget"] = *body.Budget
		}
		if body.Client != nil {
			updates["client"] = models.NormalizeString(*body.Client)
		}
		if body.Category != nil {
			updates["category"] = models.NormalizeString(*body.Category)
		}
		if body.ImageURL != nil {
			updates["image_url"] = models.NormalizeString(*body.ImageURL)
		}
		if body.StartDate != nil {
			startDate, err := models.NormalizeDate(*body.StartDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Start date must be YYYY-MM-DD")
			}
			updates["start_date"] = startDate
		}
		if body.EndDate != nil {
			endDate, err := models.NormalizeDate(*body.EndDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "End date must be YYYY-MM-DD")
			}
			updates["end_date"] = endDate
		}
		if body.Active != nil {
			updates["active"] = *body.Active
		}
		if body.Featured != nil {
			updates["featured"] = *body.Featured
		}

		if len(updates) > 0 {
			if err := database.DB.Model(&p).Updates(updates).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Project could not be updated")
			}
		}

		qc.Invalidate(EntityProjects)
		audit.Record(c, EntityProjects, p.ID, models.AuditUpdate, updates)

		return c.JSON(p)
	}
}

// DELETE /api/admin/projects/:id
// Hard delete, no undo.
func DeleteProjectHandler(qc *cache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var p models.Project
		if err := database.DB.First(&p, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Project not found")
		}

		if err := database.DB.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Project could not be deleted")
		}

		qc.Invalidate(EntityProjects)
		audit.Record(c, EntityProjects, id, models.AuditDelete, p)

		return c.SendStatus(fiber.StatusNoContent)
	}
}
