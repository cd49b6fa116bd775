package model

import (
	"strconv"
	"strings"
)

// ActionConfig is the process-wide assistant configuration. It is built once
// at start-up and passed by value into the components that read it.
type ActionConfig struct {
	TriggerPhrase      string
	AssigneeTrigger    string
	LabelTrigger       string
	BaseBranch         string
	BranchPrefix       string
	MaxTurns           int
	TimeoutMinutes     int
	Model              string
	CustomInstructions string
	AllowedTools       []string
	DisallowedTools    []string
	UseBedrock         bool
	UseVertex          bool
}

// CI variable names carrying ActionConfig into a pipeline.
const (
	VarTriggerPhrase      = "TRIGGER_PHRASE"
	VarAssigneeTrigger    = "ASSIGNEE_TRIGGER"
	VarLabelTrigger       = "LABEL_TRIGGER"
	VarBaseBranch         = "BASE_BRANCH"
	VarBranchPrefix       = "BRANCH_PREFIX"
	VarMaxTurns           = "MAX_TURNS"
	VarTimeoutMinutes     = "TIMEOUT_MINUTES"
	VarModel              = "MODEL"
	VarCustomInstructions = "CUSTOM_INSTRUCTIONS"
	VarAllowedTools       = "ALLOWED_TOOLS"
	VarDisallowedTools    = "DISALLOWED_TOOLS"
	VarUseBedrock         = "USE_BEDROCK"
	VarUseVertex          = "USE_VERTEX"
)

// Variables flattens the config into CI variables. Empty values are left out.
func (c ActionConfig) Variables() map[string]string {
	vars := make(map[string]string)
	set := func(k, v string) {
		if v != "" {
			vars[k] = v
		}
	}
	set(VarTriggerPhrase, c.TriggerPhrase)
	set(VarAssigneeTrigger, c.AssigneeTrigger)
	set(VarLabelTrigger, c.LabelTrigger)
	set(VarBaseBranch, c.BaseBranch)
	set(VarBranchPrefix, c.BranchPrefix)
	if c.MaxTurns > 0 {
		set(VarMaxTurns, strconv.Itoa(c.MaxTurns))
	}
	if c.TimeoutMinutes > 0 {
		set(VarTimeoutMinutes, strconv.Itoa(c.TimeoutMinutes))
	}
	set(VarModel, c.Model)
	set(VarCustomInstructions, c.CustomInstructions)
	set(VarAllowedTools, strings.Join(c.AllowedTools, ","))
	set(VarDisallowedTools, strings.Join(c.DisallowedTools, ","))
	if c.UseBedrock {
		set(VarUseBedrock, "true")
	}
	if c.UseVertex {
		set(VarUseVertex, "true")
	}
	return vars
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
