package material

// Role names a color of a scheme, e.g. "onPrimaryContainer".
type Role string

// SchemeColors maps a role to a normalized hex color. Roles may be absent.
type SchemeColors map[Role]string

// Scheme roles.
const (
	RolePrimary                 Role = "primary"
	RoleOnPrimary               Role = "onPrimary"
	RolePrimaryContainer        Role = "primaryContainer"
	RoleOnPrimaryContainer      Role = "onPrimaryContainer"
	RoleSecondary               Role = "secondary"
	RoleOnSecondary             Role = "onSecondary"
	RoleSecondaryContainer      Role = "secondaryContainer"
	RoleOnSecondaryContainer    Role = "onSecondaryContainer"
	RoleTertiary                Role = "tertiary"
	RoleOnTertiary              Role = "onTertiary"
	RoleTertiaryContainer       Role = "tertiaryContainer"
	RoleOnTertiaryContainer     Role = "onTertiaryContainer"
	RoleError                   Role = "error"
	RoleOnError                 Role = "onError"
	RoleErrorContainer          Role = "errorContainer"
	RoleOnErrorContainer        Role = "onErrorContainer"
	RoleBackground              Role = "background"
	RoleOnBackground            Role = "onBackground"
	RoleSurface                 Role = "surface"
	RoleOnSurface               Role = "onSurface"
	RoleSurfaceVariant          Role = "surfaceVariant"
	RoleOnSurfaceVariant        Role = "onSurfaceVariant"
	RoleSurfaceDim              Role = "surfaceDim"
	RoleSurfaceBright           Role = "surfaceBright"
	RoleSurfaceContainerLowest  Role = "surfaceContainerLowest"
	RoleSurfaceContainerLow     Role = "surfaceContainerLow"
	RoleSurfaceContainer        Role = "surfaceContainer"
	RoleSurfaceContainerHigh    Role = "surfaceContainerHigh"
	RoleSurfaceContainerHighest Role = "surfaceContainerHighest"
	RoleOutline                 Role = "outline"
	RoleOutlineVariant          Role = "outlineVariant"
	RoleShadow                  Role = "shadow"
	RoleScrim                   Role = "scrim"
	RoleInverseSurface          Role = "inverseSurface"
	RoleInverseOnSurface        Role = "inverseOnSurface"
	RoleInversePrimary          Role = "inversePrimary"
	RoleSurfaceTint             Role = "surfaceTint"
)

// assignment picks a tone of a ramp for a role, once per mode.
type assignment struct {
	role        Role
	ramp        Ramp
	light, dark int
}

var assignments = []assignment{
	{RolePrimary, Primary, 40, 80},
	{RoleOnPrimary, Primary, 100, 20},
	{RolePrimaryContainer, Primary, 90, 30},
	{RoleOnPrimaryContainer, Primary, 10, 90},
	{RoleSecondary, Secondary, 40, 80},
	{RoleOnSecondary, Secondary, 100, 20},
	{RoleSecondaryContainer, Secondary, 90, 30},
	{RoleOnSecondaryContainer, Secondary, 10, 90},
	{RoleTertiary, Tertiary, 40, 80},
	{RoleOnTertiary, Tertiary, 100, 20},
	{RoleTertiaryContainer, Tertiary, 90, 30},
	{RoleOnTertiaryContainer, Tertiary, 10, 90},
	{RoleError, Error, 40, 80},
	{RoleOnError, Error, 100, 20},
	{RoleErrorContainer, Error, 90, 30},
	{RoleOnErrorContainer, Error, 10, 90},
	{RoleBackground, Neutral, 98, 6},
	{RoleOnBackground, Neutral, 10, 90},
	{RoleSurface, Neutral, 98, 6},
	{RoleOnSurface, Neutral, 10, 90},
	{RoleSurfaceVariant, NeutralVariant, 90, 30},
	{RoleOnSurfaceVariant, NeutralVariant, 30, 80},
	{RoleSurfaceDim, Neutral, 87, 6},
	{RoleSurfaceBright, Neutral, 98, 24},
	{RoleSurfaceContainerLowest, Neutral, 100, 4},
	{RoleSurfaceContainerLow, Neutral, 96, 10},
	{RoleSurfaceContainer, Neutral, 94, 12},
	{RoleSurfaceContainerHigh, Neutral, 92, 17},
	{RoleSurfaceContainerHighest, Neutral, 90, 22},
	{RoleOutline, NeutralVariant, 50, 60},
	{RoleOutlineVariant, NeutralVariant, 80, 30},
	{RoleShadow, Neutral, 0, 0},
	{RoleScrim, Neutral, 0, 0},
	{RoleInverseSurface, Neutral, 20, 90},
	{RoleInverseOnSurface, Neutral, 95, 20},
	{RoleInversePrimary, Primary, 80, 40},
	{RoleSurfaceTint, Primary, 40, 80},
}

// schemes resolves both schemes from the ramp key colors.
func schemes(keys map[Ramp]keyColor) (light, dark SchemeColors) {
	light = make(SchemeColors, len(assignments))
	dark = make(SchemeColors, len(assignments))

	for _, a := range assignments {
		k := keys[a.ramp]
		light[a.role] = k.tone(a.light)
		dark[a.role] = k.tone(a.dark)
	}

	return light, dark
}
