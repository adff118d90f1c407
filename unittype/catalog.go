package unittype

import "github.com/nstehr/vimy/vimy-tactics/gms"

var (
	gaussRifle      = Weapon{Name: "Gauss Rifle", Damage: 6, DamageBonus: 1, Hits: 1, Cooldown: 15, MaxRange: 128}
	bunkerRifle     = Weapon{Name: "Gauss Rifle", Damage: 6, DamageBonus: 1, Hits: 1, Cooldown: 15, MaxRange: 160}
	flameThrower    = Weapon{Name: "Flame Thrower", Damage: 8, DamageBonus: 1, Hits: 2, Cooldown: 22, MaxRange: 32, Type: Concussive, Explosion: EnemySplash, InnerSplash: 15, MedianSplash: 20, OuterSplash: 25}
	c10Rifle        = Weapon{Name: "C-10 Canister Rifle", Damage: 10, DamageBonus: 1, Hits: 1, Cooldown: 22, MaxRange: 224, Type: Concussive}
	fusionCutter    = Weapon{Name: "Fusion Cutter", Damage: 5, DamageBonus: 1, Hits: 1, Cooldown: 15, MaxRange: 10}
	fragGrenade     = Weapon{Name: "Fragmentation Grenade", Damage: 20, DamageBonus: 2, Hits: 1, Cooldown: 30, MaxRange: 160, Type: Concussive}
	spiderMines     = Weapon{Name: "Spider Mines", Damage: 125, Hits: 1, Cooldown: 22, MaxRange: 10, Type: Explosive, Explosion: RadialSplash, InnerSplash: 50, MedianSplash: 75, OuterSplash: 100}
	arcliteCannon   = Weapon{Name: "Arclite Cannon", Damage: 30, DamageBonus: 3, Hits: 1, Cooldown: 37, MaxRange: 224, Type: Explosive}
	shockCannon     = Weapon{Name: "Arclite Shock Cannon", Damage: 70, DamageBonus: 5, Hits: 1, Cooldown: 75, MinRange: 64, MaxRange: 384, Type: Explosive, Explosion: RadialSplash, InnerSplash: 10, MedianSplash: 25, OuterSplash: 40}
	twinAutocannons = Weapon{Name: "Twin Autocannons", Damage: 12, DamageBonus: 1, Hits: 1, Cooldown: 22, MaxRange: 192}
	hellfireMissile = Weapon{Name: "Hellfire Missile Pack", Damage: 10, DamageBonus: 2, Hits: 2, Cooldown: 22, MaxRange: 160, Type: Explosive}
	burstLasers     = Weapon{Name: "Burst Lasers", Damage: 8, DamageBonus: 1, Hits: 1, Cooldown: 30, MaxRange: 160}
	geminiMissiles  = Weapon{Name: "Gemini Missiles", Damage: 20, DamageBonus: 2, Hits: 1, Cooldown: 22, MaxRange: 160, Type: Explosive}
	haloRockets     = Weapon{Name: "Halo Rockets", Damage: 6, DamageBonus: 1, Hits: 2, Cooldown: 64, MaxRange: 192, Type: Explosive, Explosion: EnemySplash, InnerSplash: 5, MedianSplash: 50, OuterSplash: 100}
	longbolt        = Weapon{Name: "Longbolt Missile", Damage: 20, Hits: 1, Cooldown: 15, MaxRange: 224, Type: Explosive}

	droneSpines     = Weapon{Name: "Spines", Damage: 5, Hits: 1, Cooldown: 22, MaxRange: 32}
	claws           = Weapon{Name: "Claws", Damage: 5, DamageBonus: 1, Hits: 1, Cooldown: 8, MaxRange: 15}
	needleSpines    = Weapon{Name: "Needle Spines", Damage: 10, DamageBonus: 1, Hits: 1, Cooldown: 15, MaxRange: 128, Type: Explosive}
	lurkerSpines    = Weapon{Name: "Subterranean Spines", Damage: 20, DamageBonus: 2, Hits: 1, Cooldown: 37, MaxRange: 192, Explosion: LineSplash, InnerSplash: 20, MedianSplash: 20, OuterSplash: 20}
	kaiserBlades    = Weapon{Name: "Kaiser Blades", Damage: 20, DamageBonus: 3, Hits: 1, Cooldown: 15, MaxRange: 25}
	glaveWurm       = Weapon{Name: "Glave Wurm", Damage: 9, DamageBonus: 1, Hits: 1, Cooldown: 30, MaxRange: 96, Explosion: Bounce}
	acidSpore       = Weapon{Name: "Acid Spore", Damage: 20, DamageBonus: 2, Hits: 1, Cooldown: 30, MaxRange: 256}
	corrosiveAcid   = Weapon{Name: "Corrosive Acid", Damage: 25, DamageBonus: 2, Hits: 1, Cooldown: 100, MaxRange: 192, Type: Explosive}
	scourgeSuicide  = Weapon{Name: "Suicide Scourge", Damage: 110, Hits: 1, Cooldown: 1, MaxRange: 3}
	infestedSuicide = Weapon{Name: "Suicide Infested Terran", Damage: 500, Hits: 1, Cooldown: 1, MaxRange: 3, Type: Explosive, Explosion: RadialSplash, InnerSplash: 20, MedianSplash: 40, OuterSplash: 60}
	tentacle        = Weapon{Name: "Subterranean Tentacle", Damage: 40, Hits: 1, Cooldown: 32, MaxRange: 224, Type: Explosive}
	seekerSpores    = Weapon{Name: "Seeker Spores", Damage: 15, Hits: 1, Cooldown: 15, MaxRange: 224}

	particleBeam    = Weapon{Name: "Particle Beam", Damage: 5, DamageBonus: 1, Hits: 1, Cooldown: 22, MaxRange: 32}
	psiBlades       = Weapon{Name: "Psi Blades", Damage: 8, DamageBonus: 1, Hits: 2, Cooldown: 22, MaxRange: 15}
	phaseDisruptor  = Weapon{Name: "Phase Disruptor", Damage: 20, DamageBonus: 2, Hits: 1, Cooldown: 30, MaxRange: 128, Type: Explosive}
	warpBlades      = Weapon{Name: "Warp Blades", Damage: 40, DamageBonus: 3, Hits: 1, Cooldown: 30, MaxRange: 15}
	psiShockwave    = Weapon{Name: "Psionic Shockwave", Damage: 30, DamageBonus: 3, Hits: 1, Cooldown: 20, MaxRange: 64, Explosion: EnemySplash, InnerSplash: 3, MedianSplash: 15, OuterSplash: 30}
	scarab          = Weapon{Name: "Scarab", Damage: 100, DamageBonus: 25, Hits: 1, Cooldown: 60, MaxRange: 256, Explosion: EnemySplash, InnerSplash: 20, MedianSplash: 40, OuterSplash: 60}
	neutronFlare    = Weapon{Name: "Neutron Flare", Damage: 5, DamageBonus: 1, Hits: 1, Cooldown: 8, MaxRange: 160, Type: Explosive, Explosion: EnemySplash, InnerSplash: 5, MedianSplash: 50, OuterSplash: 100}
	dualPhoton      = Weapon{Name: "Dual Photon Blasters", Damage: 8, DamageBonus: 1, Hits: 1, Cooldown: 30, MaxRange: 128}
	antiMatter      = Weapon{Name: "Anti-Matter Missiles", Damage: 14, DamageBonus: 1, Hits: 2, Cooldown: 22, MaxRange: 128, Type: Explosive}
	interceptorBay  = Weapon{Name: "Interceptor Bay", Damage: 6, DamageBonus: 1, Hits: 4, Cooldown: 30, MaxRange: 256}
	pulseCannon     = Weapon{Name: "Pulse Cannon", Damage: 6, DamageBonus: 1, Hits: 1, Cooldown: 37, MaxRange: 128}
	phaseCannon     = Weapon{Name: "Phase Disruptor Cannon", Damage: 10, DamageBonus: 1, Hits: 1, Cooldown: 45, MaxRange: 160, Type: Explosive}
	photonCannon    = Weapon{Name: "STS Photon Cannon", Damage: 20, Hits: 1, Cooldown: 22, MaxRange: 224}
)

// catalog is indexed by Type. Prices of two-in-egg types are per pair.
var catalog = [numTypes]Info{
	None: {Name: "None"},

	TerranMarine:             {Name: "Terran_Marine", Race: Terran, Price: gms.Gms{Minerals: 50, Supply: 2}, HP: 40, Size: Small, Speed: 4, TurnRadius: 40, Left: 8, Up: 9, Right: 8, Down: 10, Ground: gaussRifle, Air: gaussRifle, BuildTime: 360, StopFrames: 8, Flags: Organic | Stimmable},
	TerranFirebat:            {Name: "Terran_Firebat", Race: Terran, Price: gms.Gms{Minerals: 50, Gas: 25, Supply: 2}, HP: 50, Armor: 1, Size: Small, Speed: 4, TurnRadius: 40, Left: 11, Up: 7, Right: 11, Down: 14, Ground: flameThrower, BuildTime: 360, StopFrames: 8, Flags: Organic | Stimmable},
	TerranMedic:              {Name: "Terran_Medic", Race: Terran, Price: gms.Gms{Minerals: 50, Gas: 25, Supply: 2}, HP: 60, Armor: 1, MaxEnergy: 200, Size: Small, Speed: 4, TurnRadius: 40, Left: 8, Up: 9, Right: 8, Down: 10, BuildTime: 450, StopFrames: 2, Flags: Organic | Healer | Spellcaster},
	TerranGhost:              {Name: "Terran_Ghost", Race: Terran, Price: gms.Gms{Minerals: 25, Gas: 75, Supply: 2}, HP: 45, MaxEnergy: 200, Size: Small, Speed: 4, TurnRadius: 40, Left: 7, Up: 10, Right: 7, Down: 11, Ground: c10Rifle, Air: c10Rifle, BuildTime: 750, StopFrames: 3, Flags: Organic | Spellcaster},
	TerranSCV:                {Name: "Terran_SCV", Race: Terran, Price: gms.Gms{Minerals: 50, Supply: 2}, HP: 60, Size: Small, Speed: 4.92, TurnRadius: 40, Left: 11, Up: 11, Right: 11, Down: 11, Ground: fusionCutter, BuildTime: 300, StopFrames: 2, Flags: Worker | Organic | Mechanical | Repairer},
	TerranVulture:            {Name: "Terran_Vulture", Race: Terran, Price: gms.Gms{Minerals: 75, Supply: 4}, HP: 80, Size: Medium, Speed: 6.4, TurnRadius: 17, Left: 16, Up: 16, Right: 15, Down: 15, Ground: fragGrenade, BuildTime: 450, StopFrames: 2, Flags: Mechanical | Kiter},
	TerranSpiderMine:         {Name: "Terran_Vulture_Spider_Mine", Race: Terran, Price: gms.Gms{Minerals: 1}, HP: 20, Size: Small, Speed: 16, TurnRadius: 127, Left: 7, Up: 7, Right: 7, Down: 7, Ground: spiderMines, BuildTime: 1, StopFrames: 2, Flags: Mechanical | Suicider},
	TerranSiegeTankTankMode:  {Name: "Terran_Siege_Tank_Tank_Mode", Race: Terran, Price: gms.Gms{Minerals: 150, Gas: 100, Supply: 4}, HP: 150, Armor: 1, Size: Large, Speed: 4, TurnRadius: 13, Left: 16, Up: 16, Right: 15, Down: 15, Ground: arcliteCannon, BuildTime: 750, StopFrames: 1, Flags: Mechanical},
	TerranSiegeTankSiegeMode: {Name: "Terran_Siege_Tank_Siege_Mode", Race: Terran, Price: gms.Gms{Minerals: 150, Gas: 100, Supply: 4}, HP: 150, Armor: 1, Size: Large, TurnRadius: 13, Left: 16, Up: 16, Right: 15, Down: 15, Ground: shockCannon, BuildTime: 750, StopFrames: 1, Flags: Mechanical},
	TerranGoliath:            {Name: "Terran_Goliath", Race: Terran, Price: gms.Gms{Minerals: 100, Gas: 50, Supply: 4}, HP: 125, Armor: 1, Size: Large, Speed: 4.57, TurnRadius: 17, Left: 15, Up: 15, Right: 16, Down: 16, Ground: twinAutocannons, Air: hellfireMissile, BuildTime: 600, StopFrames: 1, Flags: Mechanical},
	TerranWraith:             {Name: "Terran_Wraith", Race: Terran, Price: gms.Gms{Minerals: 150, Gas: 100, Supply: 4}, HP: 120, Size: Large, Speed: 6.67, TurnRadius: 40, Left: 19, Up: 15, Right: 18, Down: 14, Ground: burstLasers, Air: geminiMissiles, BuildTime: 900, StopFrames: 2, Flags: Flyer | Mechanical},
	TerranDropship:           {Name: "Terran_Dropship", Race: Terran, Price: gms.Gms{Minerals: 100, Gas: 100, Supply: 4}, HP: 150, Armor: 1, Size: Large, Speed: 5.47, TurnRadius: 20, Left: 24, Up: 16, Right: 24, Down: 20, BuildTime: 750, StopFrames: 2, Flags: Flyer | Mechanical},
	TerranScienceVessel:      {Name: "Terran_Science_Vessel", Race: Terran, Price: gms.Gms{Minerals: 100, Gas: 225, Supply: 4}, HP: 200, Armor: 1, MaxEnergy: 200, Size: Large, Speed: 5, TurnRadius: 40, Left: 32, Up: 33, Right: 32, Down: 16, BuildTime: 1200, StopFrames: 2, Flags: Flyer | Mechanical | Detector | Spellcaster},
	TerranValkyrie:           {Name: "Terran_Valkyrie", Race: Terran, Price: gms.Gms{Minerals: 250, Gas: 125, Supply: 6}, HP: 200, Armor: 2, Size: Large, Speed: 6.6, TurnRadius: 30, Left: 12, Up: 12, Right: 12, Down: 12, Air: haloRockets, BuildTime: 750, StopFrames: 40, Flags: Flyer | Mechanical},
	TerranCommandCenter:      {Name: "Terran_Command_Center", Race: Terran, Price: gms.Gms{Minerals: 400}, HP: 1500, Armor: 1, Size: Large, Left: 58, Up: 41, Right: 58, Down: 41, BuildTime: 1800, StopFrames: 2, Flags: Building | Mechanical | ResourceDepot},
	TerranSupplyDepot:        {Name: "Terran_Supply_Depot", Race: Terran, Price: gms.Gms{Minerals: 100}, HP: 500, Armor: 1, Size: Large, Left: 38, Up: 22, Right: 38, Down: 26, BuildTime: 600, StopFrames: 2, Flags: Building | Mechanical},
	TerranRefinery:           {Name: "Terran_Refinery", Race: Terran, Price: gms.Gms{Minerals: 100}, HP: 750, Armor: 1, Size: Large, Left: 56, Up: 32, Right: 56, Down: 31, BuildTime: 600, StopFrames: 2, Flags: Building | Mechanical},
	TerranBarracks:           {Name: "Terran_Barracks", Race: Terran, Price: gms.Gms{Minerals: 150}, HP: 1000, Armor: 1, Size: Large, Left: 48, Up: 40, Right: 56, Down: 32, BuildTime: 1200, StopFrames: 2, Flags: Building | Mechanical},
	TerranAcademy:            {Name: "Terran_Academy", Race: Terran, Price: gms.Gms{Minerals: 150}, HP: 600, Armor: 1, Size: Large, Left: 40, Up: 32, Right: 44, Down: 24, BuildTime: 1200, StopFrames: 2, Flags: Building | Mechanical},
	TerranFactory:            {Name: "Terran_Factory", Race: Terran, Price: gms.Gms{Minerals: 200, Gas: 100}, HP: 1250, Armor: 1, Size: Large, Left: 56, Up: 40, Right: 56, Down: 40, BuildTime: 1200, StopFrames: 2, Flags: Building | Mechanical},
	TerranArmory:             {Name: "Terran_Armory", Race: Terran, Price: gms.Gms{Minerals: 100, Gas: 50}, HP: 750, Armor: 1, Size: Large, Left: 48, Up: 32, Right: 47, Down: 22, BuildTime: 1200, StopFrames: 2, Flags: Building | Mechanical},
	TerranEngineeringBay:     {Name: "Terran_Engineering_Bay", Race: Terran, Price: gms.Gms{Minerals: 125}, HP: 850, Armor: 1, Size: Large, Left: 48, Up: 32, Right: 48, Down: 28, BuildTime: 900, StopFrames: 2, Flags: Building | Mechanical},
	TerranBunker:             {Name: "Terran_Bunker", Race: Terran, Price: gms.Gms{Minerals: 100}, HP: 350, Armor: 1, Size: Large, Left: 32, Up: 24, Right: 32, Down: 16, Ground: bunkerRifle, Air: bunkerRifle, BuildTime: 450, StopFrames: 2, Flags: Building | Mechanical},
	TerranMissileTurret:      {Name: "Terran_Missile_Turret", Race: Terran, Price: gms.Gms{Minerals: 75}, HP: 200, Size: Large, Left: 16, Up: 32, Right: 16, Down: 16, Air: longbolt, BuildTime: 450, StopFrames: 2, Flags: Building | Mechanical | Detector},

	ZergLarva:          {Name: "Zerg_Larva", Race: Zerg, HP: 25, Armor: 10, Size: Small, Speed: 1, TurnRadius: 40, Left: 8, Up: 8, Right: 7, Down: 7, StopFrames: 2, Flags: Organic | RegeneratesHP | Spawn},
	ZergEgg:            {Name: "Zerg_Egg", Race: Zerg, HP: 200, Armor: 10, Size: Medium, Left: 16, Up: 16, Right: 15, Down: 15, StopFrames: 2, Flags: Organic | RegeneratesHP | Spawn},
	ZergDrone:          {Name: "Zerg_Drone", Race: Zerg, Price: gms.Gms{Minerals: 50, Supply: 2}, HP: 40, Size: Small, Speed: 4.92, TurnRadius: 40, Left: 11, Up: 11, Right: 11, Down: 11, Ground: droneSpines, BuildTime: 300, StopFrames: 2, Flags: Worker | Organic | RegeneratesHP},
	ZergZergling:       {Name: "Zerg_Zergling", Race: Zerg, Price: gms.Gms{Minerals: 50, Supply: 1}, HP: 35, Size: Small, Speed: 5.49, TurnRadius: 27, Left: 8, Up: 4, Right: 7, Down: 11, Ground: claws, BuildTime: 420, StopFrames: 4, Flags: Organic | RegeneratesHP | TwoInEgg},
	ZergHydralisk:      {Name: "Zerg_Hydralisk", Race: Zerg, Price: gms.Gms{Minerals: 75, Gas: 25, Supply: 2}, HP: 80, Size: Medium, Speed: 3.66, TurnRadius: 27, Left: 10, Up: 10, Right: 10, Down: 12, Ground: needleSpines, Air: needleSpines, BuildTime: 420, StopFrames: 3, Flags: Organic | RegeneratesHP},
	ZergLurker:         {Name: "Zerg_Lurker", Race: Zerg, Price: gms.Gms{Minerals: 125, Gas: 125, Supply: 4}, HP: 125, Armor: 1, Size: Large, Speed: 5.82, TurnRadius: 40, Left: 15, Up: 15, Right: 16, Down: 16, Ground: lurkerSpines, BuildTime: 600, StopFrames: 2, Flags: Organic | RegeneratesHP | BurrowedAttacker},
	ZergUltralisk:      {Name: "Zerg_Ultralisk", Race: Zerg, Price: gms.Gms{Minerals: 200, Gas: 200, Supply: 8}, HP: 400, Armor: 1, Size: Large, Speed: 5.12, TurnRadius: 40, Left: 19, Up: 16, Right: 18, Down: 15, Ground: kaiserBlades, BuildTime: 900, StopFrames: 14, Flags: Organic | RegeneratesHP},
	ZergOverlord:       {Name: "Zerg_Overlord", Race: Zerg, Price: gms.Gms{Minerals: 100}, HP: 200, Size: Large, Speed: 0.83, TurnRadius: 20, Left: 25, Up: 25, Right: 24, Down: 24, BuildTime: 600, StopFrames: 2, Flags: Flyer | Organic | RegeneratesHP | Detector},
	ZergMutalisk:       {Name: "Zerg_Mutalisk", Race: Zerg, Price: gms.Gms{Minerals: 100, Gas: 100, Supply: 4}, HP: 120, Size: Small, Speed: 6.67, TurnRadius: 40, Left: 22, Up: 22, Right: 21, Down: 21, Ground: glaveWurm, Air: glaveWurm, BuildTime: 600, StopFrames: 2, Flags: Flyer | Organic | RegeneratesHP | Kiter},
	ZergGuardian:       {Name: "Zerg_Guardian", Race: Zerg, Price: gms.Gms{Minerals: 150, Gas: 200, Supply: 4}, HP: 150, Armor: 2, Size: Large, Speed: 2.5, TurnRadius: 40, Left: 22, Up: 22, Right: 21, Down: 21, Ground: acidSpore, BuildTime: 600, StopFrames: 2, Flags: Flyer | Organic | RegeneratesHP},
	ZergDevourer:       {Name: "Zerg_Devourer", Race: Zerg, Price: gms.Gms{Minerals: 250, Gas: 150, Supply: 4}, HP: 250, Armor: 2, Size: Large, Speed: 5, TurnRadius: 40, Left: 22, Up: 22, Right: 21, Down: 21, Air: corrosiveAcid, BuildTime: 600, StopFrames: 9, Flags: Flyer | Organic | RegeneratesHP},
	ZergScourge:        {Name: "Zerg_Scourge", Race: Zerg, Price: gms.Gms{Minerals: 25, Gas: 75, Supply: 1}, HP: 25, Size: Small, Speed: 6.67, TurnRadius: 40, Left: 12, Up: 12, Right: 11, Down: 11, Air: scourgeSuicide, BuildTime: 450, StopFrames: 2, Flags: Flyer | Organic | RegeneratesHP | TwoInEgg | Suicider},
	ZergDefiler:        {Name: "Zerg_Defiler", Race: Zerg, Price: gms.Gms{Minerals: 50, Gas: 150, Supply: 4}, HP: 80, Armor: 1, MaxEnergy: 200, Size: Medium, Speed: 4, TurnRadius: 27, Left: 13, Up: 12, Right: 13, Down: 12, BuildTime: 750, StopFrames: 2, Flags: Organic | RegeneratesHP | Spellcaster},
	ZergInfestedTerran: {Name: "Zerg_Infested_Terran", Race: Zerg, Price: gms.Gms{Minerals: 100, Gas: 50, Supply: 2}, HP: 60, Size: Small, Speed: 5.82, TurnRadius: 40, Left: 8, Up: 9, Right: 8, Down: 10, Ground: infestedSuicide, BuildTime: 600, StopFrames: 2, Flags: Organic | RegeneratesHP | Suicider},
	ZergHatchery:       {Name: "Zerg_Hatchery", Race: Zerg, Price: gms.Gms{Minerals: 300}, HP: 1250, Armor: 1, Size: Large, Left: 49, Up: 32, Right: 49, Down: 32, BuildTime: 1800, StopFrames: 2, Flags: Building | Organic | RegeneratesHP | ResourceDepot},
	ZergLair:           {Name: "Zerg_Lair", Race: Zerg, Price: gms.Gms{Minerals: 450, Gas: 100}, HP: 1800, Armor: 1, Size: Large, Left: 49, Up: 32, Right: 49, Down: 32, BuildTime: 1500, StopFrames: 2, Flags: Building | Organic | RegeneratesHP | ResourceDepot},
	ZergExtractor:      {Name: "Zerg_Extractor", Race: Zerg, Price: gms.Gms{Minerals: 50}, HP: 750, Armor: 1, Size: Large, Left: 64, Up: 32, Right: 63, Down: 31, BuildTime: 600, StopFrames: 2, Flags: Building | Organic | RegeneratesHP},
	ZergSpawningPool:   {Name: "Zerg_Spawning_Pool", Race: Zerg, Price: gms.Gms{Minerals: 200}, HP: 750, Armor: 1, Size: Large, Left: 36, Up: 28, Right: 40, Down: 18, BuildTime: 1200, StopFrames: 2, Flags: Building | Organic | RegeneratesHP},
	ZergHydraliskDen:   {Name: "Zerg_Hydralisk_Den", Race: Zerg, Price: gms.Gms{Minerals: 100, Gas: 50}, HP: 850, Armor: 1, Size: Large, Left: 40, Up: 32, Right: 40, Down: 24, BuildTime: 600, StopFrames: 2, Flags: Building | Organic | RegeneratesHP},
	ZergCreepColony:    {Name: "Zerg_Creep_Colony", Race: Zerg, Price: gms.Gms{Minerals: 75}, HP: 400, Size: Large, Left: 24, Up: 24, Right: 23, Down: 23, BuildTime: 300, StopFrames: 2, Flags: Building | Organic | RegeneratesHP},
	ZergSunkenColony:   {Name: "Zerg_Sunken_Colony", Race: Zerg, Price: gms.Gms{Minerals: 125}, HP: 300, Armor: 2, Size: Large, Left: 24, Up: 24, Right: 23, Down: 23, Ground: tentacle, BuildTime: 300, StopFrames: 2, Flags: Building | Organic | RegeneratesHP},
	ZergSporeColony:    {Name: "Zerg_Spore_Colony", Race: Zerg, Price: gms.Gms{Minerals: 125}, HP: 400, Size: Large, Left: 24, Up: 24, Right: 23, Down: 23, Air: seekerSpores, BuildTime: 300, StopFrames: 2, Flags: Building | Organic | RegeneratesHP | Detector},

	ProtossProbe:           {Name: "Protoss_Probe", Race: Protoss, Price: gms.Gms{Minerals: 50, Supply: 2}, HP: 20, Shields: 20, Size: Small, Speed: 4.92, TurnRadius: 40, Left: 11, Up: 11, Right: 11, Down: 11, Ground: particleBeam, BuildTime: 300, StopFrames: 2, Flags: Worker | Mechanical | Robotic},
	ProtossZealot:          {Name: "Protoss_Zealot", Race: Protoss, Price: gms.Gms{Minerals: 100, Supply: 4}, HP: 100, Shields: 60, Armor: 1, Size: Small, Speed: 4, TurnRadius: 40, Left: 11, Up: 5, Right: 11, Down: 13, Ground: psiBlades, BuildTime: 600, StopFrames: 7, Flags: 0},
	ProtossDragoon:         {Name: "Protoss_Dragoon", Race: Protoss, Price: gms.Gms{Minerals: 125, Gas: 50, Supply: 4}, HP: 100, Shields: 80, Armor: 1, Size: Large, Speed: 5, TurnRadius: 40, Left: 15, Up: 15, Right: 16, Down: 16, Ground: phaseDisruptor, Air: phaseDisruptor, BuildTime: 750, StopFrames: 7, Flags: Mechanical | Kiter},
	ProtossHighTemplar:     {Name: "Protoss_High_Templar", Race: Protoss, Price: gms.Gms{Minerals: 50, Gas: 150, Supply: 4}, HP: 40, Shields: 40, MaxEnergy: 200, Size: Small, Speed: 3.2, TurnRadius: 40, Left: 12, Up: 10, Right: 11, Down: 13, BuildTime: 750, StopFrames: 2, Flags: Spellcaster},
	ProtossDarkTemplar:     {Name: "Protoss_Dark_Templar", Race: Protoss, Price: gms.Gms{Minerals: 125, Gas: 100, Supply: 4}, HP: 80, Shields: 40, Armor: 1, Size: Small, Speed: 4.92, TurnRadius: 40, Left: 12, Up: 6, Right: 11, Down: 19, Ground: warpBlades, BuildTime: 750, StopFrames: 9, Flags: PermanentlyCloaked},
	ProtossArchon:          {Name: "Protoss_Archon", Race: Protoss, Price: gms.Gms{Minerals: 100, Gas: 300, Supply: 8}, HP: 10, Shields: 350, Size: Large, Speed: 4.92, TurnRadius: 40, Left: 16, Up: 16, Right: 15, Down: 15, Ground: psiShockwave, Air: psiShockwave, BuildTime: 300, StopFrames: 15, Flags: 0},
	ProtossReaver:          {Name: "Protoss_Reaver", Race: Protoss, Price: gms.Gms{Minerals: 200, Gas: 100, Supply: 8}, HP: 100, Shields: 80, Size: Large, Speed: 1.78, TurnRadius: 20, Left: 16, Up: 16, Right: 15, Down: 15, Ground: scarab, BuildTime: 1050, StopFrames: 1, Flags: Mechanical | Robotic},
	ProtossShuttle:         {Name: "Protoss_Shuttle", Race: Protoss, Price: gms.Gms{Minerals: 200, Supply: 4}, HP: 80, Shields: 60, Armor: 1, Size: Large, Speed: 4.43, TurnRadius: 20, Left: 20, Up: 16, Right: 19, Down: 15, BuildTime: 900, StopFrames: 2, Flags: Flyer | Mechanical | Robotic},
	ProtossObserver:        {Name: "Protoss_Observer", Race: Protoss, Price: gms.Gms{Minerals: 25, Gas: 75, Supply: 2}, HP: 40, Shields: 20, Size: Small, Speed: 3.33, TurnRadius: 20, Left: 16, Up: 16, Right: 15, Down: 15, BuildTime: 600, StopFrames: 2, Flags: Flyer | Mechanical | Robotic | Detector | PermanentlyCloaked},
	ProtossCorsair:         {Name: "Protoss_Corsair", Race: Protoss, Price: gms.Gms{Minerals: 150, Gas: 100, Supply: 4}, HP: 100, Shields: 80, Armor: 1, Size: Medium, Speed: 6.67, TurnRadius: 30, Left: 18, Up: 16, Right: 17, Down: 15, Air: neutronFlare, BuildTime: 600, StopFrames: 8, Flags: Flyer | Mechanical},
	ProtossScout:           {Name: "Protoss_Scout", Race: Protoss, Price: gms.Gms{Minerals: 275, Gas: 125, Supply: 6}, HP: 150, Shields: 100, Size: Large, Speed: 5, TurnRadius: 30, Left: 18, Up: 16, Right: 17, Down: 15, Ground: dualPhoton, Air: antiMatter, BuildTime: 1200, StopFrames: 2, Flags: Flyer | Mechanical},
	ProtossCarrier:         {Name: "Protoss_Carrier", Race: Protoss, Price: gms.Gms{Minerals: 350, Gas: 250, Supply: 12}, HP: 300, Shields: 150, Armor: 4, Size: Large, Speed: 3.33, TurnRadius: 20, Left: 32, Up: 32, Right: 31, Down: 31, Ground: interceptorBay, Air: interceptorBay, BuildTime: 2100, StopFrames: 2, Flags: Flyer | Mechanical},
	ProtossInterceptor:     {Name: "Protoss_Interceptor", Race: Protoss, Price: gms.Gms{Minerals: 25}, HP: 40, Shields: 40, Size: Small, Speed: 13.33, TurnRadius: 40, Left: 8, Up: 8, Right: 7, Down: 7, Ground: pulseCannon, Air: pulseCannon, BuildTime: 300, StopFrames: 2, Flags: Flyer | Mechanical},
	ProtossArbiter:         {Name: "Protoss_Arbiter", Race: Protoss, Price: gms.Gms{Minerals: 100, Gas: 350, Supply: 8}, HP: 200, Shields: 150, Armor: 1, MaxEnergy: 200, Size: Large, Speed: 5, TurnRadius: 40, Left: 22, Up: 22, Right: 21, Down: 21, Ground: phaseCannon, Air: phaseCannon, BuildTime: 2400, StopFrames: 4, Flags: Flyer | Mechanical | Spellcaster},
	ProtossNexus:           {Name: "Protoss_Nexus", Race: Protoss, Price: gms.Gms{Minerals: 400}, HP: 750, Shields: 750, Armor: 1, Size: Large, Left: 56, Up: 39, Right: 56, Down: 39, BuildTime: 1800, StopFrames: 2, Flags: Building | Mechanical | ResourceDepot},
	ProtossPylon:           {Name: "Protoss_Pylon", Race: Protoss, Price: gms.Gms{Minerals: 100}, HP: 300, Shields: 300, Size: Large, Left: 16, Up: 12, Right: 16, Down: 20, BuildTime: 450, StopFrames: 2, Flags: Building | Mechanical},
	ProtossAssimilator:     {Name: "Protoss_Assimilator", Race: Protoss, Price: gms.Gms{Minerals: 100}, HP: 450, Shields: 450, Armor: 1, Size: Large, Left: 48, Up: 32, Right: 48, Down: 32, BuildTime: 600, StopFrames: 2, Flags: Building | Mechanical},
	ProtossGateway:         {Name: "Protoss_Gateway", Race: Protoss, Price: gms.Gms{Minerals: 150}, HP: 500, Shields: 500, Armor: 1, Size: Large, Left: 48, Up: 32, Right: 48, Down: 40, BuildTime: 900, StopFrames: 2, Flags: Building | Mechanical},
	ProtossForge:           {Name: "Protoss_Forge", Race: Protoss, Price: gms.Gms{Minerals: 150}, HP: 550, Shields: 550, Armor: 1, Size: Large, Left: 36, Up: 24, Right: 36, Down: 20, BuildTime: 600, StopFrames: 2, Flags: Building | Mechanical},
	ProtossCyberneticsCore: {Name: "Protoss_Cybernetics_Core", Race: Protoss, Price: gms.Gms{Minerals: 200}, HP: 550, Shields: 550, Armor: 1, Size: Large, Left: 40, Up: 24, Right: 40, Down: 20, BuildTime: 900, StopFrames: 2, Flags: Building | Mechanical},
	ProtossPhotonCannon:    {Name: "Protoss_Photon_Cannon", Race: Protoss, Price: gms.Gms{Minerals: 150}, HP: 100, Shields: 100, Size: Large, Left: 20, Up: 16, Right: 20, Down: 16, Ground: photonCannon, Air: photonCannon, BuildTime: 750, StopFrames: 2, Flags: Building | Mechanical | Detector},
	ProtossShieldBattery:   {Name: "Protoss_Shield_Battery", Race: Protoss, Price: gms.Gms{Minerals: 100}, HP: 200, Shields: 200, Armor: 1, MaxEnergy: 200, Size: Large, Left: 16, Up: 16, Right: 16, Down: 16, BuildTime: 450, StopFrames: 2, Flags: Building | Mechanical},
}
