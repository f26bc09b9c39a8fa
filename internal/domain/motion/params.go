package motion

// Param names an animation parameter published to the presentation layer
type Param string

const (
	ParamWalking          Param = "walking"
	ParamJumping          Param = "jumping"
	ParamDashing          Param = "dashing"
	ParamAttacking        Param = "attacking"
	ParamAttackX          Param = "attackX"
	ParamAttackY          Param = "attackY"
	ParamVerticalVelocity Param = "verticalVelocity"
)
