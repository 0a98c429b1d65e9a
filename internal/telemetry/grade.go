package telemetry

type Grade int

const (
	GradeGood Grade = iota
	GradeFair
	GradePoor
)

func (g Grade) String() string {
	switch g {
	case GradeGood:
		return "good"
	case GradeFair:
		return "fair"
	default:
		return "poor"
	}
}

// DeviceTempStatus is the home screen label for the device temperature.
func DeviceTempStatus(temp int) string {
	switch {
	case temp < 40:
		return "Optimal"
	case temp < 50:
		return "Normal"
	default:
		return "Hot"
	}
}

func DeviceTempGrade(temp int) Grade {
	switch {
	case temp < 40:
		return GradeGood
	case temp < 50:
		return GradeFair
	default:
		return GradePoor
	}
}

// TempGrade grades a CPU or GPU temperature on the overlay.
func TempGrade(temp int) Grade {
	switch {
	case temp >= 70:
		return GradePoor
	case temp >= 55:
		return GradeFair
	default:
		return GradeGood
	}
}

func FPSGrade(fps int) Grade {
	switch {
	case fps >= 55:
		return GradeGood
	case fps >= 30:
		return GradeFair
	default:
		return GradePoor
	}
}

func BatteryGrade(battery int) Grade {
	if battery > 20 {
		return GradeGood
	}
	return GradePoor
}
