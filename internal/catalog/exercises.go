package catalog

import "fit-planner/internal/model"

var (
	homeOnly = []model.WorkoutMode{model.ModeHome}
	gymOnly  = []model.WorkoutMode{model.ModeGym}
	anywhere = []model.WorkoutMode{model.ModeHome, model.ModeGym}
)

func video(title, query string) []model.VideoLink {
	return []model.VideoLink{{Title: title, URL: searchLink(query)}}
}

func exercises() []model.Exercise {
	return []model.Exercise{
		// Impact loading.
		{
			ID: "jump-rope", Name: "Jump Rope / Pogo Hops", Mode: anywhere,
			MuscleGroup:     []string{"Calves", "Cardio", "Bone Density"},
			MovementPattern: model.PatternGait, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 1 min",
			FormSteps: []string{
				"Keep elbows close to ribs.",
				"Bounce on balls of feet (impact creates bone density).",
				"Keep knees soft but springy.",
				"Use wrists to spin the rope, not arms.",
			},
			CommonMistakes: []string{"Jumping too high.", "Landing flat-footed (bad for joints)."},
			SafetyNotes:    []string{"Wear supportive shoes.", "Start with 30s intervals if shin splints occur."},
			VideoLinks:     video("Jump Rope Form", "how to jump rope properly"),
		},
		{
			ID: "box-jumps", Name: "Box Jumps", Mode: anywhere,
			MuscleGroup:     []string{"Quads", "Glutes", "Calves"},
			MovementPattern: model.PatternSquat, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 8 reps",
			FormSteps: []string{
				"Stand facing box.",
				"Squat slightly and swing arms back.",
				"Explode up, landing softly on the box.",
				"Stand up fully to extend hips.",
				"Step down (do not jump down to save achilles).",
			},
			CommonMistakes: []string{"Landing with knees caving in.", "Jumping down backwards."},
			SafetyNotes:    []string{"Step down one foot at a time to reduce injury risk."},
			VideoLinks:     video("Box Jump Technique", "box jump technique"),
		},
		{
			ID: "broad-jumps", Name: "Broad Jumps", Mode: anywhere,
			MuscleGroup:     []string{"Glutes", "Hamstrings", "Quads"},
			MovementPattern: model.PatternHinge, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 6 reps",
			FormSteps: []string{
				"Feet shoulder-width.",
				"Swing arms back and hinge hips.",
				"Jump forward as far as possible.",
				"Land softly in a squat position.",
			},
			CommonMistakes: []string{"Landing stiff-legged (high injury risk)."},
			SafetyNotes:    []string{"Land quietly. Noise = Impact on joints, Quiet = Impact on muscles."},
			VideoLinks:     video("Broad Jump Form", "standing broad jump form"),
		},

		// Axial loading.
		{
			ID: "trap-bar-deadlift", Name: "Trap Bar Deadlift", Mode: gymOnly,
			MuscleGroup:     []string{"Quads", "Glutes", "Back", "Traps"},
			MovementPattern: model.PatternHinge, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 6-8 reps",
			FormSteps: []string{
				"Step inside bar, feet hip-width.",
				"Hinge hips back and bend knees to grab handles.",
				"Chest up, spine neutral.",
				"Drive feet into floor to stand up tall.",
			},
			CommonMistakes: []string{"Rounding back.", "Squatting too much (hips too low)."},
			SafetyNotes:    []string{"Great for axial loading with less shear force on spine than barbell."},
			VideoLinks:     video("Trap Bar Deadlift", "trap bar deadlift form"),
		},
		{
			ID: "front-squat", Name: "Front Squat", Mode: gymOnly,
			MuscleGroup:     []string{"Quads", "Core", "Upper Back"},
			MovementPattern: model.PatternSquat, Level: model.LevelAdvanced,
			DefaultPrescription: "3 sets x 8 reps",
			FormSteps: []string{
				"Rack bar on front delts, elbows high.",
				"Feet shoulder-width.",
				"Squat down keeping torso as vertical as possible.",
				"Drive up.",
			},
			CommonMistakes: []string{"Elbows dropping.", "Rounding upper back."},
			SafetyNotes:    []string{"Requires good thoracic mobility. Switch to Goblet if wrists hurt."},
			VideoLinks:     video("Front Squat Guide", "front squat form"),
		},
		{
			ID: "weighted-step-ups", Name: "Weighted Step-Ups", Mode: anywhere,
			MuscleGroup:     []string{"Quads", "Glutes"},
			MovementPattern: model.PatternLunge, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 10/leg",
			FormSteps: []string{
				"Hold dumbbells in hands.",
				"Place one foot on box/chair.",
				"Drive through the top heel to stand up (do not push off bottom foot).",
				"Lower slowly.",
			},
			CommonMistakes: []string{"Pushing off the floor leg.", "Box too high (rounding lower back)."},
			SafetyNotes:    []string{"Control the descent to protect knees."},
			VideoLinks:     video("Weighted Step Ups", "weighted step up form"),
		},
		{
			ID: "rucking", Name: "Rucking (Weighted Walk)", Mode: anywhere,
			MuscleGroup:     []string{"Back", "Legs", "Core"},
			MovementPattern: model.PatternGait, Level: model.LevelBeginner,
			DefaultPrescription: "20-30 min walk",
			FormSteps: []string{
				"Wear a weighted backpack (start with 5-10kg).",
				"Keep posture tall, shoulders back.",
				"Walk at a brisk pace.",
			},
			CommonMistakes: []string{"Leaning forward excessively.", "Using straps that are too loose."},
			SafetyNotes:    []string{"Excellent low-impact axial loading for bone density."},
			VideoLinks:     video("Rucking Guide", "how to ruck properly"),
		},

		// Push.
		{
			ID: "pushups", Name: "Standard Push-Up", Mode: homeOnly,
			MuscleGroup:     []string{"Chest", "Triceps", "Front Delts"},
			MovementPattern: model.PatternPush, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 10-15 reps",
			FormSteps: []string{
				"Start in high plank, hands slightly wider than shoulders.",
				"Engage core and glutes to keep body in a straight line.",
				"Lower chest to floor, keeping elbows at 45-degree angle.",
				"Push back up explosively.",
			},
			CommonMistakes: []string{"Flaring elbows out too wide (90 degrees).", "Sagging hips.", "Neck craning forward."},
			SafetyNotes:    []string{"If wrist pain occurs, use push-up handles or dumbbells."},
			VideoLinks:     video("Perfect Pushup Form", "perfect pushup form"),
		},
		{
			ID: "pike-pushups", Name: "Pike Push-Up", Mode: homeOnly,
			MuscleGroup:     []string{"Shoulders", "Triceps"},
			MovementPattern: model.PatternPush, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 8-12 reps",
			FormSteps: []string{
				"Start in downward dog position, hips high.",
				"Lower head towards the floor between hands.",
				"Push back up to starting position.",
			},
			CommonMistakes: []string{"Flaring elbows.", "Not keeping legs straight (bend if needed for hamstring flexibility)."},
			SafetyNotes:    []string{"Be careful not to hit your head on the floor."},
			VideoLinks:     video("Pike Pushup Tutorial", "pike pushup progression"),
		},
		{
			ID: "chair-dips", Name: "Tricep Chair Dips", Mode: homeOnly,
			MuscleGroup:     []string{"Triceps"},
			MovementPattern: model.PatternPush, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 12-15 reps",
			FormSteps: []string{
				"Sit on edge of chair, hands gripping edge next to hips.",
				"Slide butt off chair, supporting weight with arms.",
				"Lower body by bending elbows until 90 degrees.",
				"Push back up.",
			},
			CommonMistakes: []string{"Shrugging shoulders.", "Going too deep (bad for shoulders)."},
			SafetyNotes:    []string{"Stop if you feel sharp pain in front of shoulder."},
			VideoLinks:     video("Chair Dips Guide", "how to do chair dips"),
		},
		{
			ID: "bench-press", Name: "Barbell Bench Press", Mode: gymOnly,
			MuscleGroup:     []string{"Chest", "Triceps"},
			MovementPattern: model.PatternPush, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 8-10 reps",
			FormSteps: []string{
				"Lie on bench, feet flat on floor.",
				"Grip bar slightly wider than shoulders.",
				"Lower bar to mid-chest with control.",
				"Press bar back up.",
			},
			CommonMistakes: []string{"Bouncing bar off chest.", "Lifting butt off bench."},
			SafetyNotes:    []string{"Always use a spotter or safety pins for heavy sets."},
			VideoLinks:     video("Bench Press Technique", "bench press form"),
		},
		{
			ID: "overhead-press", Name: "Overhead Press (OHP)", Mode: anywhere,
			MuscleGroup:     []string{"Shoulders", "Triceps", "Core"},
			MovementPattern: model.PatternPush, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 8-10 reps",
			FormSteps: []string{
				"Stand feet shoulder-width, brace core.",
				"Press weight directly overhead until arms lock out.",
				"Lower with control to collarbone level.",
			},
			CommonMistakes: []string{"Arching back excessively.", "Pushing weight forward instead of up."},
			SafetyNotes:    []string{"Engage glutes to protect lower back."},
			VideoLinks:     video("OHP Guide", "overhead press form"),
		},

		// Pull.
		{
			ID: "pullups", Name: "Pull-Ups", Mode: anywhere,
			MuscleGroup:     []string{"Lats", "Biceps"},
			MovementPattern: model.PatternPull, Level: model.LevelAdvanced,
			DefaultPrescription: "3 sets x Max reps",
			FormSteps: []string{
				"Grip bar slightly wider than shoulders.",
				"Pull chest towards bar by driving elbows down.",
				"Lower fully to dead hang.",
			},
			CommonMistakes: []string{"Kipping/Swinging.", "Not going all the way down."},
			SafetyNotes:    []string{"Use bands if cannot do 1 rep."},
			VideoLinks:     video("Pullup Progression", "how to do pullups"),
		},
		{
			ID: "doorframe-row", Name: "Doorframe Row", Mode: homeOnly,
			MuscleGroup:     []string{"Back", "Rear Delts"},
			MovementPattern: model.PatternPull, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 15 reps",
			FormSteps: []string{
				"Stand in doorway, grip frame with one/both hands.",
				"Lean back.",
				"Pull chest to frame using back muscles.",
			},
			CommonMistakes: []string{"Using mostly arms.", "Rounding back."},
			SafetyNotes:    []string{"Ensure good grip."},
			VideoLinks:     video("Door Row", "doorframe row exercise"),
		},
		{
			ID: "dumbbell-row", Name: "Dumbbell/Backpack Row", Mode: anywhere,
			MuscleGroup:     []string{"Lats", "Biceps"},
			MovementPattern: model.PatternPull, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 12 reps",
			FormSteps: []string{
				"Hinge at hips, hand on bench/knee for support.",
				"Pull weight to hip pocket.",
				"Lower with control.",
			},
			CommonMistakes: []string{"Rounding back.", "Rotating torso."},
			SafetyNotes:    []string{"Keep spine neutral."},
			VideoLinks:     video("DB Row Form", "dumbbell row form"),
		},
		{
			ID: "lat-pulldown", Name: "Lat Pulldown", Mode: gymOnly,
			MuscleGroup:     []string{"Lats", "Biceps"},
			MovementPattern: model.PatternPull, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 10-12 reps",
			FormSteps: []string{
				"Sit with knees secured.",
				"Grip wide.",
				"Pull bar to upper chest, driving elbows down.",
				"Return slowly.",
			},
			CommonMistakes: []string{"Leaning back too far.", "Using momentum."},
			SafetyNotes:    []string{"Control the negative."},
			VideoLinks:     video("Lat Pulldown Guide", "lat pulldown form"),
		},
		{
			ID: "cable-row", Name: "Seated Cable Row", Mode: gymOnly,
			MuscleGroup:     []string{"Back", "Rhomboids"},
			MovementPattern: model.PatternPull, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 12 reps",
			FormSteps: []string{
				"Sit with feet braced, slight knee bend.",
				"Keep back straight, pull handle to stomach.",
				"Squeeze shoulder blades.",
			},
			CommonMistakes: []string{"Rounding lower back.", "Leaning back and forth."},
			SafetyNotes:    []string{"Do not round spine at full extension."},
			VideoLinks:     video("Cable Row", "seated cable row form"),
		},

		// Legs.
		{
			ID: "goblet-squat", Name: "Goblet Squat", Mode: anywhere,
			MuscleGroup:     []string{"Quads", "Glutes", "Core"},
			MovementPattern: model.PatternSquat, Level: model.LevelBeginner,
			DefaultPrescription: "4 sets x 10-12 reps",
			FormSteps: []string{
				"Hold weight at chest height.",
				"Squat down by sitting back and opening knees.",
				"Keep chest up.",
				"Drive up through heels.",
			},
			CommonMistakes: []string{"Knees caving in.", "Heels lifting off floor."},
			SafetyNotes:    []string{"Keep back straight."},
			VideoLinks:     video("Goblet Squat", "goblet squat form"),
		},
		{
			ID: "barbell-squat", Name: "Barbell Back Squat", Mode: gymOnly,
			MuscleGroup:     []string{"Quads", "Glutes", "Lower Back"},
			MovementPattern: model.PatternSquat, Level: model.LevelAdvanced,
			DefaultPrescription: "3 sets x 6-8 reps",
			FormSteps: []string{
				"Bar rests on upper back traps.",
				"Feet shoulder width, toes slightly out.",
				"Brace core, squat deep.",
				"Drive up.",
			},
			CommonMistakes: []string{"Knees caving.", "Butt wink (rounding)."},
			SafetyNotes:    []string{"Use safety bars."},
			VideoLinks:     video("Squat Guide", "barbell squat form"),
		},
		{
			ID: "split-squat", Name: "Split Squat", Mode: anywhere,
			MuscleGroup:     []string{"Quads", "Glutes"},
			MovementPattern: model.PatternLunge, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 10/leg",
			FormSteps: []string{
				"Stagger stance.",
				"Lower back knee toward floor.",
				"Keep front heel flat.",
				"Push back up.",
			},
			CommonMistakes: []string{"Walking on tightrope (feet too narrow).", "Front heel lifting."},
			SafetyNotes:    []string{"Balance is key."},
			VideoLinks:     video("Split Squat", "split squat form"),
		},
		{
			ID: "rdl", Name: "Romanian Deadlift (RDL)", Mode: anywhere,
			MuscleGroup:     []string{"Hamstrings", "Glutes"},
			MovementPattern: model.PatternHinge, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 10 reps",
			FormSteps: []string{
				"Hold weight, slight knee bend.",
				"Push hips back while keeping back flat.",
				"Lower weight until hamstring stretch.",
				"Squeeze glutes to stand.",
			},
			CommonMistakes: []string{"Rounding back.", "Squatting instead of hinging."},
			SafetyNotes:    []string{"Spine neutrality is non-negotiable."},
			VideoLinks:     video("RDL Tutorial", "rdl form"),
		},
		{
			ID: "farmer-carry", Name: "Farmer Carry", Mode: anywhere,
			MuscleGroup:     []string{"Forearms", "Traps", "Core"},
			MovementPattern: model.PatternGait, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 45 sec",
			FormSteps: []string{
				"Hold heavy weights in each hand.",
				"Stand tall, shoulders back.",
				"Walk controlled steps.",
			},
			CommonMistakes: []string{"Slouching.", "Rushing."},
			SafetyNotes:    []string{"Watch your toes when dropping weights."},
			VideoLinks:     video("Farmer Carry", "farmer carry form"),
		},

		// Core and mobility.
		{
			ID: "plank", Name: "Plank", Mode: anywhere,
			MuscleGroup:     []string{"Core"},
			MovementPattern: model.PatternCore, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 45-60s",
			FormSteps:           []string{"Forearms on ground.", "Body straight.", "Squeeze glutes and abs."},
			CommonMistakes:      []string{"Hips sagging.", "Butt too high."},
			SafetyNotes:         []string{"Stop if lower back hurts."},
			VideoLinks:          video("Plank Form", "perfect plank form"),
		},
		{
			ID: "dead-bug", Name: "Dead Bug", Mode: anywhere,
			MuscleGroup:     []string{"Core"},
			MovementPattern: model.PatternCore, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 12 reps",
			FormSteps:           []string{"Lie on back, arms and legs up.", "Lower opposite arm and leg.", "Keep lower back pressed to floor."},
			CommonMistakes:      []string{"Arching back off floor."},
			SafetyNotes:         []string{"Crucial for spine health."},
			VideoLinks:          video("Dead Bug", "dead bug exercise"),
		},
		{
			ID: "cat-cow", Name: "Cat-Cow Stretch", Mode: anywhere,
			MuscleGroup:     []string{"Spine"},
			MovementPattern: model.PatternMobility, Level: model.LevelBeginner,
			DefaultPrescription: "1 min",
			FormSteps:           []string{"Hands and knees.", "Arch back up (Cat).", "Sink belly down (Cow)."},
			CommonMistakes:      []string{"Moving too fast."},
			SafetyNotes:         []string{"Gentle motion."},
			VideoLinks:          video("Cat Cow", "cat cow stretch"),
		},
		{
			ID: "face-pulls", Name: "Face Pulls", Mode: anywhere,
			MuscleGroup:     []string{"Rear Delts", "Rotator Cuff"},
			MovementPattern: model.PatternPull, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 15 reps",
			FormSteps:           []string{"Pull rope to forehead.", "External rotation at end.", "Squeeze rear shoulders."},
			CommonMistakes:      []string{"Going too heavy.", "Pulling to chest."},
			SafetyNotes:         []string{"Posture fixer."},
			VideoLinks:          video("Face Pull", "face pull exercise"),
		},
		{
			ID: "tibialis-raise", Name: "Tibialis Raise", Mode: anywhere,
			MuscleGroup:     []string{"Shins"},
			MovementPattern: model.PatternIsolation, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 20 reps",
			FormSteps:           []string{"Lean butt against wall.", "Walk feet out.", "Raise toes towards shins."},
			CommonMistakes:      []string{"Bending knees too much."},
			SafetyNotes:         []string{"Prevents shin splints and knee pain."},
			VideoLinks:          video("Tibialis Raise", "tibialis raise at home"),
		},

		// Pelvic floor and posture.
		{
			ID: "kegel-basic", Name: "Kegel Hold (Level 1)", Mode: homeOnly,
			MuscleGroup:     []string{"Pelvic Floor"},
			MovementPattern: model.PatternIsolation, Level: model.LevelBeginner,
			DefaultPrescription: "3 sets x 10 reps (3s hold)",
			FormSteps: []string{
				"Identify pelvic floor muscles (stop urine flow).",
				"Contract muscles upward.",
				"Hold for 3 seconds.",
				"Fully relax for 3 seconds.",
			},
			CommonMistakes: []string{"Holding breath.", "Squeezing glutes or thighs instead of pelvic floor."},
			SafetyNotes:    []string{"Do not do this while actually urinating."},
			VideoLinks:     video("Kegel Guide", "kegel exercises for men"),
		},
		{
			ID: "kegel-pulsing", Name: "Kegel Rapid Fire (Level 2)", Mode: homeOnly,
			MuscleGroup:     []string{"Pelvic Floor"},
			MovementPattern: model.PatternIsolation, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 20 reps (1s speed)",
			FormSteps: []string{
				"Contract pelvic floor hard and fast.",
				"Release immediately.",
				"Repeat rhythmically: Squeeze, Relax, Squeeze, Relax.",
				"Focus on speed.",
			},
			CommonMistakes: []string{"Not relaxing fully between reps.", "Using abs."},
			SafetyNotes:    []string{"Trains fast-twitch fibers for endurance."},
			VideoLinks:     video("Kegel Pulsing", "rapid kegels for men"),
		},
		{
			ID: "reverse-kegel", Name: "Reverse Kegel (Level 3)", Mode: homeOnly,
			MuscleGroup:     []string{"Pelvic Floor"},
			MovementPattern: model.PatternMobility, Level: model.LevelAdvanced,
			DefaultPrescription: "3 sets x 30s hold",
			FormSteps: []string{
				"Inhale deeply into your belly.",
				"Gently push/bulge the pelvic floor OUT (like passing gas).",
				"Do not strain, just expand.",
				"Exhale and relax.",
			},
			CommonMistakes: []string{"Pushing too hard (bearing down).", "Holding breath."},
			SafetyNotes:    []string{"Crucial for hypertonic (tight) pelvic floor. If you have pain, do this."},
			VideoLinks:     video("Reverse Kegel", "how to do reverse kegel"),
		},
		{
			ID: "kegel-bridge", Name: "Glute Bridge Kegel", Mode: homeOnly,
			MuscleGroup:     []string{"Pelvic Floor", "Glutes"},
			MovementPattern: model.PatternCore, Level: model.LevelIntermediate,
			DefaultPrescription: "3 sets x 12 reps",
			FormSteps:           []string{"Lie on back, knees bent.", "Squeeze glutes and pelvic floor.", "Lift hips.", "Relax pelvic floor as you lower hips."},
			CommonMistakes:      []string{"Arching lower back."},
			SafetyNotes:         []string{"Integrates core and floor."},
			VideoLinks:          video("Bridge Kegel", "glute bridge kegel"),
		},
		{
			ID: "chin-tuck", Name: "Chin Tucks", Mode: homeOnly,
			MuscleGroup:     []string{"Neck"},
			MovementPattern: model.PatternMobility, Level: model.LevelBeginner,
			DefaultPrescription: "20 reps",
			FormSteps:           []string{"Stand straight.", "Pull head straight back (double chin).", "Hold 2s."},
			CommonMistakes:      []string{"Looking down.", "Tiring muscles."},
			SafetyNotes:         []string{"Fixes nerd neck."},
			VideoLinks:          video("Chin Tucks", "chin tucks for posture"),
		},
	}
}
