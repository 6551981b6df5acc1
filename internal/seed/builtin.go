package seed

import "github.com/Shivanand-hulikatti/volunteer-connect/internal/model"

// Builtin returns the sample directory: six users (two organizers) and four
// events.
func Builtin() Document {
	return Document{
		Users: []model.User{
			{
				ID:             "1",
				Name:           "Alex Johnson",
				Email:          "alex@example.com",
				Skills:         []model.Skill{model.SkillDance, model.SkillTeach},
				Region:         model.RegionNorth,
				ProfilePicture: "https://i.pravatar.cc/150?img=1",
				Bio:            "Professional dancer with 5 years of teaching experience.",
			},
			{
				ID:             "2",
				Name:           "Sam Brown",
				Email:          "sam@example.com",
				Skills:         []model.Skill{model.SkillClean, model.SkillCook},
				Region:         model.RegionSouth,
				ProfilePicture: "https://i.pravatar.cc/150?img=2",
				Bio:            "Passionate about community service and cooking for large groups.",
			},
			{
				ID:             "3",
				Name:           "Jordan Smith",
				Email:          "jordan@example.com",
				Skills:         []model.Skill{model.SkillSports, model.SkillTeach},
				Region:         model.RegionEast,
				ProfilePicture: "https://i.pravatar.cc/150?img=3",
				Bio:            "Sports coach with experience teaching all ages.",
			},
			{
				ID:             "4",
				Name:           "Taylor Williams",
				Email:          "taylor@example.com",
				Skills:         []model.Skill{model.SkillDance, model.SkillSports},
				Region:         model.RegionWest,
				ProfilePicture: "https://i.pravatar.cc/150?img=4",
				Bio:            "Former professional athlete now focused on community outreach.",
			},
			{
				ID:             "5",
				Name:           "Casey Martinez",
				Email:          "casey@example.com",
				Skills:         []model.Skill{model.SkillClean, model.SkillCook},
				Region:         model.RegionCentral,
				ProfilePicture: "https://i.pravatar.cc/150?img=5",
				Bio:            "Experienced in organizing and cleaning for large events.",
				IsOrganizer:    true,
			},
			{
				ID:             "6",
				Name:           "Riley Cooper",
				Email:          "riley@example.com",
				Skills:         []model.Skill{model.SkillTeach, model.SkillSports},
				Region:         model.RegionNorth,
				ProfilePicture: "https://i.pravatar.cc/150?img=6",
				Bio:            "Physical education teacher with coaching experience.",
				IsOrganizer:    true,
			},
		},
		Events: []EventRecord{
			{
				ID:             "1",
				Title:          "Community Dance Workshop",
				Description:    "Teach basic dance moves to community members of all ages.",
				Date:           "2025-05-15",
				Time:           "14:00",
				Location:       "Community Center",
				Region:         model.RegionNorth,
				OrganizerID:    "6",
				RequiredSkills: []model.Skill{model.SkillDance, model.SkillTeach},
				VolunteerIDs:   []string{"1"},
				MaxVolunteers:  3,
				IsActive:       true,
			},
			{
				ID:             "2",
				Title:          "Park Cleanup Day",
				Description:    "Help clean and maintain our local park.",
				Date:           "2025-05-22",
				Time:           "09:00",
				Location:       "Central Park",
				Region:         model.RegionCentral,
				OrganizerID:    "5",
				RequiredSkills: []model.Skill{model.SkillClean},
				VolunteerIDs:   []string{"2"},
				MaxVolunteers:  10,
				IsActive:       true,
			},
			{
				ID:             "3",
				Title:          "Youth Sports Clinic",
				Description:    "Introduce kids to various sports and teach basic skills.",
				Date:           "2025-06-05",
				Time:           "10:00",
				Location:       "Sports Complex",
				Region:         model.RegionEast,
				OrganizerID:    "6",
				RequiredSkills: []model.Skill{model.SkillSports, model.SkillTeach},
				VolunteerIDs:   []string{"3", "4"},
				MaxVolunteers:  5,
				IsActive:       true,
			},
			{
				ID:             "4",
				Title:          "Community Kitchen",
				Description:    "Help prepare meals for homeless shelter residents.",
				Date:           "2025-05-18",
				Time:           "16:00",
				Location:       "Downtown Shelter",
				Region:         model.RegionSouth,
				OrganizerID:    "5",
				RequiredSkills: []model.Skill{model.SkillCook},
				VolunteerIDs:   []string{"2"},
				MaxVolunteers:  6,
				IsActive:       true,
			},
		},
	}
}
