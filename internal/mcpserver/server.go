// Package mcpserver provides an MCP (Model Context Protocol) server that
// exposes the skill catalog and validators for LLM integration via stdio
// transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/ansuz/internal/catalog"
	"github.com/starford/ansuz/internal/checks"
	"github.com/starford/ansuz/internal/models"
)

// Server wraps the MCP server with Ansuz tools.
type Server struct {
	mcp    *server.MCPServer
	cat    *catalog.Catalog
	prefix string
	scope  []string
	pats   *checks.ApproachPatterns
}

// New creates a new MCP server with all Ansuz tools registered.
func New(cat *catalog.Catalog, prefix string, scope []string, pats *checks.ApproachPatterns) *Server {
	s := &Server{cat: cat, prefix: prefix, scope: scope, pats: pats}

	s.mcp = server.NewMCPServer(
		"Ansuz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List the identifiers of every skill in the tree."),
	), s.listSkills)

	s.mcp.AddTool(mcp.NewTool("read_skill",
		mcp.WithDescription("Read the full primary document of a skill."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Skill identifier (directory name)")),
	), s.readSkill)

	s.mcp.AddTool(mcp.NewTool("validate_skills",
		mcp.WithDescription("Validate the frontmatter metadata of every skill document "+
			"and return the per-document errors and warnings as JSON. Documents MUST "+
			"follow the canonical skill format; read it first via the get_skill_contract "+
			"tool or the ansuz://skill-format resource."),
	), s.validateSkills)

	s.mcp.AddTool(mcp.NewTool("check_references",
		mcp.WithDescription("Check every skill's Related Skills section for references "+
			"that do not resolve to a known skill, returned as JSON."),
	), s.checkReferences)

	s.mcp.AddTool(mcp.NewTool("check_approaches",
		mcp.WithDescription("Check that every in-scope skill documents both a UI-based "+
			"and a code-based approach, returned as JSON."),
	), s.checkApproaches)

	s.mcp.AddTool(mcp.NewTool("get_skill_contract",
		mcp.WithDescription("Returns the canonical skill document format contract. "+
			"Call this before authoring or editing skill documents."),
	), s.getSkillContract)

	// Resource: skill format contract.
	s.mcp.AddResource(
		mcp.NewResource("ansuz://skill-format", "Skill Format Contract",
			mcp.WithResourceDescription("Canonical SKILL.md format that all skill documents must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSkillFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listSkills(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.cat.Names()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(strings.Join(names, "\n")), nil
}

func (s *Server) readSkill(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	skill, err := s.cat.Get(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", name)), nil
	}
	return mcp.NewToolResultText(skill.Content), nil
}

func (s *Server) validateSkills(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	skills, err := s.cat.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := make([]*models.Result, 0, len(skills))
	errs, warns := 0, 0
	for _, skill := range skills {
		res := checks.Metadata(skill)
		errs += len(res.Errors)
		warns += len(res.Warnings)
		results = append(results, res)
	}

	out, _ := json.MarshalIndent(map[string]any{
		"files":    len(results),
		"errors":   errs,
		"warnings": warns,
		"results":  results,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) checkReferences(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := s.cat.Names()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	skills, err := s.cat.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rep := checks.Refs(skills, names, s.prefix)
	out, _ := json.MarshalIndent(rep, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) checkApproaches(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	skills, err := s.cat.Load(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := checks.Approaches(skills, s.scope, s.pats)
	passed := 0
	for _, r := range results {
		if r.Passed() {
			passed++
		}
	}

	out, _ := json.MarshalIndent(map[string]any{
		"checked": len(results),
		"passed":  passed,
		"results": results,
	}, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getSkillContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(SkillFormatContract), nil
}

func (s *Server) readSkillFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "ansuz://skill-format",
			MIMEType: "text/markdown",
			Text:     SkillFormatContract,
		},
	}, nil
}
