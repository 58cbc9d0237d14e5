// api/routes/router.go
package routes

import (
	"net/http"
	"pcpro/internal/apidoc"
	"pcpro/internal/shared/config"
	"pcpro/internal/shared/utils/response"
	"pcpro/pkg/apiclient"
	"pcpro/pkg/logger"
	"pcpro/pkg/metrics"
	"pcpro/pkg/pro"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	client    *apiclient.Client
	collector *metrics.Collector
	groups    []apidoc.Group

	specOnce sync.Once
	spec     []byte
	specErr  error
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, client *apiclient.Client, collector *metrics.Collector, groups ...apidoc.Group) *Router {
	return &Router{
		config:    cfg,
		client:    client,
		collector: collector,
		groups:    groups,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)
	r.setupDocsRoutes(engine)

	if r.collector != nil {
		engine.GET("/metrics", gin.WrapH(r.collector.Handler()))
	}

	ops := engine.Group("/operations")
	{
		ops.GET("", r.listOperations)
		ops.GET("/:group/:id", r.getOperation)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		call, err := pro.ListFeatures()
		if err == nil {
			_, err = apiclient.Do(c.Request.Context(), r.client, call)
		}
		if err != nil {
			logger.GetDefault().ErrorWithContext(c.Request.Context(), "Backend health check failed", err, map[string]interface{}{
				"base_url": r.config.API.BaseURL,
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"backend":   r.config.API.BaseURL,
				"timestamp": time.Now(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"backend":   r.config.API.BaseURL,
			"timestamp": time.Now(),
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.API.Version,
		})
	})
}

func (r *Router) setupDocsRoutes(engine *gin.Engine) {
	engine.GET("/openapi.json", func(c *gin.Context) {
		doc, err := r.document()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "failed to build the API document", err.Error())
			return
		}
		c.Data(http.StatusOK, "application/json", doc)
	})

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
}

// document is built on first use and then served from memory.
func (r *Router) document() ([]byte, error) {
	r.specOnce.Do(func() {
		r.spec, r.specErr = apidoc.JSON(r.config.Docs.Title, r.config.API.Version, r.groups...)
	})
	return r.spec, r.specErr
}

func (r *Router) listOperations(c *gin.Context) {
	group := c.Query("group")
	tag := c.Query("tag")

	summaries := []response.OperationSummary{}
	for _, g := range r.groups {
		if group != "" && g.Name != group {
			continue
		}
		for _, op := range g.Operations {
			if tag != "" && !hasTag(op, tag) {
				continue
			}
			summaries = append(summaries, summarize(g.Name, op))
		}
	}

	response.Success(c, "Operations retrieved successfully", summaries)
}

func (r *Router) getOperation(c *gin.Context) {
	group, id := c.Param("group"), c.Param("id")
	for _, g := range r.groups {
		if g.Name != group {
			continue
		}
		for _, op := range g.Operations {
			if op.ID == id {
				response.Success(c, "Operation retrieved successfully", detail(g.Name, op))
				return
			}
		}
	}
	response.Error(c, http.StatusNotFound, "Operation not found", nil)
}

func hasTag(op *apiclient.Operation, tag string) bool {
	for _, t := range op.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func summarize(group string, op *apiclient.Operation) response.OperationSummary {
	return response.OperationSummary{
		Group:      group,
		ID:         op.ID,
		Method:     op.Method,
		Path:       op.Path,
		Tags:       op.Tags,
		Deprecated: op.Deprecated,
		Secured:    op.Secured,
	}
}

func detail(group string, op *apiclient.Operation) response.OperationDetail {
	d := response.OperationDetail{
		OperationSummary: summarize(group, op),
		Encoding:         op.Encoding.MediaType(),
	}
	for _, p := range op.Params {
		d.Params = append(d.Params, response.ParamDetail{Name: p.Name, In: string(p.In), Required: p.Required})
	}
	if len(op.Errors) > 0 {
		codes := make([]int, 0, len(op.Errors))
		for code := range op.Errors {
			codes = append(codes, code)
		}
		sort.Ints(codes)
		d.Errors = make(map[string]string, len(codes))
		for _, code := range codes {
			d.Errors[strconv.Itoa(code)] = op.Errors[code]
		}
	}
	return d
}
