package semantic

import (
	"strings"

	"github.com/basetoken/basetoken/material"
)

// ColorRole maps a scheme role to the semantic color name it is published under.
type ColorRole struct {
	Scheme material.Role
	Name   string
	Group  string
}

// ColorRoles is the color table in output order.
var ColorRoles = []ColorRole{
	{material.RolePrimary, "primary", "Primary"},
	{material.RoleOnPrimary, "primary-on", "Primary"},
	{material.RolePrimaryContainer, "primary-container", "Primary"},
	{material.RoleOnPrimaryContainer, "primary-container-on", "Primary"},

	{material.RoleSecondary, "secondary", "Secondary"},
	{material.RoleOnSecondary, "secondary-on", "Secondary"},
	{material.RoleSecondaryContainer, "secondary-container", "Secondary"},
	{material.RoleOnSecondaryContainer, "secondary-container-on", "Secondary"},

	{material.RoleTertiary, "tertiary", "Tertiary"},
	{material.RoleOnTertiary, "tertiary-on", "Tertiary"},
	{material.RoleTertiaryContainer, "tertiary-container", "Tertiary"},
	{material.RoleOnTertiaryContainer, "tertiary-container-on", "Tertiary"},

	{material.RoleSurface, "surface", "Surface"},
	{material.RoleOnSurface, "surface-on", "Surface"},
	{material.RoleSurfaceVariant, "surface-variant", "Surface"},
	{material.RoleOnSurfaceVariant, "surface-variant-on", "Surface"},
	{material.RoleSurfaceContainer, "surface-container", "Surface"},
	{material.RoleSurfaceContainerLow, "surface-container-low", "Surface"},
	{material.RoleSurfaceContainerLowest, "surface-container-lowest", "Surface"},
	{material.RoleSurfaceContainerHigh, "surface-container-high", "Surface"},
	{material.RoleSurfaceContainerHighest, "surface-container-highest", "Surface"},
	{material.RoleSurfaceDim, "surface-dim", "Surface"},
	{material.RoleSurfaceBright, "surface-bright", "Surface"},

	{material.RoleBackground, "background", "Background"},
	{material.RoleOnBackground, "background-on", "Background"},

	{material.RoleError, "error", "Error"},
	{material.RoleOnError, "error-on", "Error"},
	{material.RoleErrorContainer, "error-container", "Error"},
	{material.RoleOnErrorContainer, "error-container-on", "Error"},

	{material.RoleOutline, "outline", "Outline"},
	{material.RoleOutlineVariant, "outline-variant", "Outline"},

	{material.RoleInverseSurface, "inverse-surface", "Inverse"},
	{material.RoleInverseOnSurface, "inverse-surface-on", "Inverse"},
	{material.RoleInversePrimary, "inverse-primary", "Inverse"},

	{material.RoleScrim, "scrim", "Utility"},
	{material.RoleShadow, "shadow-color", "Utility"},
	{material.RoleSurfaceTint, "surface-tint", "Utility"},
}

var groupPrefixes = []struct {
	prefix, group string
}{
	{"primary", "Primary"},
	{"secondary", "Secondary"},
	{"tertiary", "Tertiary"},
	{"surface", "Surface"},
	{"background", "Background"},
	{"error", "Error"},
	{"outline", "Outline"},
	{"inverse", "Inverse"},
}

// ColorGroup classifies a semantic color name such as "primary-container-on".
// Names matching no group are "Other".
func ColorGroup(name string) string {
	for _, g := range groupPrefixes {
		if strings.HasPrefix(name, g.prefix) {
			return g.group
		}
	}

	if name == "scrim" || name == "shadow-color" {
		return "Utility"
	}

	return "Other"
}
