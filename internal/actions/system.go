package actions

func init() {
	Register(&Action{
		ID:    ActionUpdate,
		Use:   "update",
		Short: "Check for updates",
		Long:  "Check for a newer walletnet release and install it",
		Inputs: []InputField{
			{
				Name:  "check",
				Label: "Only check, do not install",
				Type:  InputTypeBool,
			},
		},
		MenuLabel: "Check Updates",
	})
}
