package actions

func init() {
	// Config parent action (submenu)
	Register(&Action{
		ID:        ActionConfig,
		Use:       "config",
		Short:     "Manage configuration",
		Long:      "Show or edit configuration",
		MenuLabel: "Configure",
		IsSubmenu: true,
	})

	// config show
	Register(&Action{
		ID:        ActionConfigShow,
		Parent:    ActionConfig,
		Use:       "show",
		Short:     "Show current configuration",
		Long:      "Display the current configuration",
		MenuLabel: "Show",
		Inputs: []InputField{
			{
				Name:        "json",
				Label:       "JSON",
				Description: "Print the configuration as JSON",
				Type:        InputTypeBool,
			},
		},
	})

	// config edit
	Register(&Action{
		ID:        ActionConfigEdit,
		Parent:    ActionConfig,
		Use:       "edit",
		Short:     "Edit configuration",
		Long:      "Open configuration in editor",
		MenuLabel: "Edit",
	})
}
