package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"opsdeck/internal/app"
	"opsdeck/internal/domain/activity"
	"opsdeck/internal/domain/agent"
	"opsdeck/internal/domain/calendar"
	"opsdeck/internal/domain/client"
	"opsdeck/internal/domain/cost"
	"opsdeck/internal/domain/decision"
	"opsdeck/internal/domain/goal"
	"opsdeck/internal/domain/priority"
	"opsdeck/internal/domain/task"
	"opsdeck/internal/metrics"
)

type emptyParams struct{}

type idParams struct {
	ID string `json:"id" jsonschema:"identifier of the item"`
}

type statusResult struct {
	Status string `json:"status"`
}

var deleted = statusResult{Status: "deleted"}

// registerTools wires every dashboard operation to the SDK server.
func registerTools(server *sdkmcp.Server, c *app.Container) {
	registerDashboardTools(server, c)
	registerTaskTools(server, c)
	registerPriorityTools(server, c)
	registerCostTools(server, c)
	registerCalendarTools(server, c)
	registerRevenueTools(server, c)
	registerAgentTools(server, c)
	registerDecisionTools(server, c)
	registerWorkspaceTools(server, c)
}

func registerDashboardTools(server *sdkmcp.Server, c *app.Container) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Get the headline dashboard numbers: MRR, costs, tasks today, active projects, goal countdown",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, metrics.Summary, error) {
		return nil, c.Metrics.Summarize(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_board",
		Description: "Get the kanban board: tasks grouped into backlog, in_progress, and done columns",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, metrics.Board, error) {
		return nil, c.Metrics.Board(), nil
	})

	type activityParams struct {
		Limit int `json:"limit,omitempty" jsonschema:"maximum entries to return, newest first"`
	}
	type activityResult struct {
		Entries []activity.Item `json:"entries"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_activity",
		Description: "Get recent activity feed entries, newest first",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in activityParams) (*sdkmcp.CallToolResult, activityResult, error) {
		return nil, activityResult{Entries: c.Activity.Recent(in.Limit)}, nil
	})
}

func registerTaskTools(server *sdkmcp.Server, c *app.Container) {
	type listTasksResult struct {
		Tasks []task.Task `json:"tasks"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List all tasks on the board",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listTasksResult, error) {
		return nil, listTasksResult{Tasks: c.Tasks.List()}, nil
	})

	type createTaskParams struct {
		Title       string `json:"title" jsonschema:"task title, required"`
		Description string `json:"description,omitempty"`
		Priority    string `json:"priority,omitempty" jsonschema:"high, medium, or low; defaults to medium"`
		Column      string `json:"column,omitempty" jsonschema:"backlog, in_progress, or done; defaults to backlog"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_task",
		Description: "Create a new task on the board",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in createTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		t, err := c.Tasks.Create(ctx, task.CreateRequest{
			Title:       in.Title,
			Description: in.Description,
			Priority:    task.Priority(in.Priority),
			Column:      task.Column(in.Column),
		})
		return nil, t, mapError(err)
	})

	type updateTaskParams struct {
		ID          string  `json:"id"`
		Title       *string `json:"title,omitempty"`
		Description *string `json:"description,omitempty"`
		Priority    *string `json:"priority,omitempty" jsonschema:"high, medium, or low"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_task",
		Description: "Update a task's title, description, or priority; omitted fields are left unchanged",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in updateTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		var p *task.Priority
		if in.Priority != nil {
			v := task.Priority(*in.Priority)
			p = &v
		}
		t, err := c.Tasks.Update(ctx, task.UpdateRequest{
			ID:          in.ID,
			Title:       in.Title,
			Description: in.Description,
			Priority:    p,
		})
		return nil, t, mapError(err)
	})

	type moveTaskParams struct {
		ID     string `json:"id"`
		Column string `json:"column" jsonschema:"target column: backlog, in_progress, or done"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_task",
		Description: "Move a task to another board column",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in moveTaskParams) (*sdkmcp.CallToolResult, *task.Task, error) {
		t, err := c.Tasks.Move(ctx, in.ID, task.Column(in.Column))
		return nil, t, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task from the board",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Tasks.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerPriorityTools(server *sdkmcp.Server, c *app.Container) {
	type listPrioritiesResult struct {
		Priorities []priority.Priority `json:"priorities"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_priorities",
		Description: "List this week's priorities",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listPrioritiesResult, error) {
		return nil, listPrioritiesResult{Priorities: c.Priorities.List()}, nil
	})

	type addPriorityParams struct {
		Text string `json:"text" jsonschema:"priority text, required"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_priority",
		Description: "Add a weekly priority",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addPriorityParams) (*sdkmcp.CallToolResult, *priority.Priority, error) {
		p, err := c.Priorities.Add(ctx, in.Text)
		return nil, p, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_priority",
		Description: "Toggle a priority between done and not done",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, *priority.Priority, error) {
		p, err := c.Priorities.Toggle(ctx, in.ID)
		return nil, p, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_priority",
		Description: "Delete a weekly priority",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Priorities.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerCostTools(server *sdkmcp.Server, c *app.Container) {
	type listCostsResult struct {
		Costs        []cost.Item `json:"costs"`
		MonthlyTotal float64     `json:"monthly_total"`
		Currency     string      `json:"currency,omitempty"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_costs",
		Description: "List recurring costs with the normalized monthly total",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listCostsResult, error) {
		total, currency := c.Metrics.MonthlyCostTotal()
		return nil, listCostsResult{Costs: c.Costs.List(), MonthlyTotal: total, Currency: currency}, nil
	})

	type addCostParams struct {
		Label    string  `json:"label" jsonschema:"what the cost is for, required"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency,omitempty" jsonschema:"defaults to USD"`
		Period   string  `json:"period,omitempty" jsonschema:"mo or yr; defaults to mo"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_cost",
		Description: "Record a recurring cost",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addCostParams) (*sdkmcp.CallToolResult, *cost.Item, error) {
		item, err := c.Costs.Add(ctx, cost.AddRequest{
			Label:    in.Label,
			Amount:   in.Amount,
			Currency: in.Currency,
			Period:   cost.Period(in.Period),
		})
		return nil, item, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_cost",
		Description: "Delete a recurring cost",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Costs.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerCalendarTools(server *sdkmcp.Server, c *app.Container) {
	type listEventsResult struct {
		Events []calendar.Event `json:"events"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_events",
		Description: "List calendar events",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listEventsResult, error) {
		return nil, listEventsResult{Events: c.Calendar.List()}, nil
	})

	type addEventParams struct {
		Title    string `json:"title" jsonschema:"event title, required"`
		When     string `json:"when,omitempty" jsonschema:"event time as an ISO 8601 string, required"`
		Location string `json:"location,omitempty"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_event",
		Description: "Schedule a calendar event",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addEventParams) (*sdkmcp.CallToolResult, *calendar.Event, error) {
		ev, err := c.Calendar.Add(ctx, calendar.AddRequest{
			Title:    in.Title,
			When:     in.When,
			Location: in.Location,
		})
		return nil, ev, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_event",
		Description: "Delete a calendar event",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Calendar.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerRevenueTools(server *sdkmcp.Server, c *app.Container) {
	type revenueResult struct {
		MRR     float64                `json:"mrr"`
		Goal    float64                `json:"goal"`
		Series  []metrics.RevenuePoint `json:"series"`
		Clients []client.Client        `json:"clients"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_revenue",
		Description: "Get the revenue view: current MRR, goal, trailing six-month series, and client list",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, revenueResult, error) {
		return nil, revenueResult{
			MRR:     c.Metrics.MRR(),
			Goal:    c.Clients.RevenueGoal(),
			Series:  c.Metrics.RevenueSeries(),
			Clients: c.Clients.List(),
		}, nil
	})

	type setRevenueGoalParams struct {
		Goal float64 `json:"goal" jsonschema:"monthly recurring revenue target"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_revenue_goal",
		Description: "Set the monthly recurring revenue target",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in setRevenueGoalParams) (*sdkmcp.CallToolResult, statusResult, error) {
		c.Clients.SetRevenueGoal(ctx, in.Goal)
		return nil, statusResult{Status: "ok"}, nil
	})

	type addClientParams struct {
		Name   string  `json:"name" jsonschema:"client name, required"`
		MRR    float64 `json:"mrr,omitempty"`
		Status string  `json:"status,omitempty" jsonschema:"active, pending, or churned; defaults to pending"`
		Start  string  `json:"start,omitempty" jsonschema:"start date YYYY-MM-DD; defaults to today"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_client",
		Description: "Register a client",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addClientParams) (*sdkmcp.CallToolResult, *client.Client, error) {
		cl, err := c.Clients.Add(ctx, client.AddRequest{
			Name:   in.Name,
			MRR:    in.MRR,
			Status: client.Status(in.Status),
			Start:  in.Start,
		})
		return nil, cl, mapError(err)
	})

	type setClientStatusParams struct {
		ID     string `json:"id"`
		Status string `json:"status" jsonschema:"active, pending, or churned"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_client_status",
		Description: "Change a client's status; only active clients count toward MRR",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in setClientStatusParams) (*sdkmcp.CallToolResult, *client.Client, error) {
		cl, err := c.Clients.SetStatus(ctx, in.ID, client.Status(in.Status))
		return nil, cl, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_client",
		Description: "Delete a client",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Clients.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerAgentTools(server *sdkmcp.Server, c *app.Container) {
	type listAgentsResult struct {
		Agents []agent.Agent `json:"agents"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_agents",
		Description: "List agents with status and recent per-agent activity",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listAgentsResult, error) {
		return nil, listAgentsResult{Agents: c.Agents.List()}, nil
	})

	type sendAgentTaskParams struct {
		ID   string `json:"id" jsonschema:"agent identifier"`
		Text string `json:"text" jsonschema:"the work to dispatch, required"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "send_agent_task",
		Description: "Dispatch work to an agent; the agent goes busy and returns online shortly after",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in sendAgentTaskParams) (*sdkmcp.CallToolResult, *agent.Agent, error) {
		a, err := c.Agents.SendTask(ctx, in.ID, in.Text)
		return nil, a, mapError(err)
	})

	type updateAgentNotesParams struct {
		ID    string `json:"id" jsonschema:"agent identifier"`
		Notes string `json:"notes" jsonschema:"performance notes"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_agent_notes",
		Description: "Replace an agent's performance notes",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in updateAgentNotesParams) (*sdkmcp.CallToolResult, *agent.Agent, error) {
		a, err := c.Agents.UpdateNotes(ctx, in.ID, in.Notes)
		return nil, a, mapError(err)
	})
}

func registerDecisionTools(server *sdkmcp.Server, c *app.Container) {
	type listDecisionsResult struct {
		Decisions []decision.Decision `json:"decisions"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_decisions",
		Description: "List recorded decisions",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, listDecisionsResult, error) {
		return nil, listDecisionsResult{Decisions: c.Decisions.List()}, nil
	})

	type addDecisionParams struct {
		Question  string   `json:"question" jsonschema:"the decision question, required"`
		Summary   string   `json:"summary,omitempty" jsonschema:"what was decided"`
		Date      string   `json:"date,omitempty" jsonschema:"decision date YYYY-MM-DD; defaults to today"`
		Consulted []string `json:"consulted,omitempty" jsonschema:"names of people consulted"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_decision",
		Description: "Record a decision with who was consulted",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in addDecisionParams) (*sdkmcp.CallToolResult, *decision.Decision, error) {
		d, err := c.Decisions.Add(ctx, decision.AddRequest{
			Question:  in.Question,
			Summary:   in.Summary,
			Date:      in.Date,
			Consulted: in.Consulted,
		})
		return nil, d, mapError(err)
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_decision",
		Description: "Delete a recorded decision",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in idParams) (*sdkmcp.CallToolResult, statusResult, error) {
		if err := c.Decisions.Delete(ctx, in.ID); err != nil {
			return nil, statusResult{}, mapError(err)
		}
		return nil, deleted, nil
	})
}

func registerWorkspaceTools(server *sdkmcp.Server, c *app.Container) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_goal",
		Description: "Get the north-star goal settings",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, goal.Settings, error) {
		return nil, c.Goal.Get(), nil
	})

	type setGoalParams struct {
		Name    string `json:"name" jsonschema:"goal name, required"`
		Percent int    `json:"percent,omitempty" jsonschema:"progress percentage"`
		Date    string `json:"date,omitempty" jsonschema:"target date YYYY-MM-DD"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_goal",
		Description: "Replace the north-star goal settings",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in setGoalParams) (*sdkmcp.CallToolResult, goal.Settings, error) {
		s, err := c.Goal.Set(ctx, goal.Settings{Name: in.Name, Percent: in.Percent, Date: in.Date})
		return nil, s, mapError(err)
	})

	type notesResult struct {
		Notes string `json:"notes"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_notes",
		Description: "Get the free-form notes text",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, notesResult, error) {
		return nil, notesResult{Notes: c.Notes()}, nil
	})

	type setNotesParams struct {
		Notes string `json:"notes"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_notes",
		Description: "Replace the free-form notes text",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in setNotesParams) (*sdkmcp.CallToolResult, statusResult, error) {
		c.SetNotes(ctx, in.Notes)
		return nil, statusResult{Status: "ok"}, nil
	})

	type tabResult struct {
		Tab string `json:"tab"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_tab",
		Description: "Get the current view identifier",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, tabResult, error) {
		return nil, tabResult{Tab: c.Tab()}, nil
	})

	type setTabParams struct {
		Tab string `json:"tab" jsonschema:"view identifier; empty input is ignored"`
	}
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_tab",
		Description: "Switch the current view",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, in setTabParams) (*sdkmcp.CallToolResult, tabResult, error) {
		c.SetTab(ctx, in.Tab)
		return nil, tabResult{Tab: c.Tab()}, nil
	})
}
