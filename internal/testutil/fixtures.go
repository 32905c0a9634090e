package testutil

// SampleRosterJSON is a two-team roster with one player referencing a team
// the roster does not define.
const SampleRosterJSON = `{
  "teams": [
    {"teamId": "RED", "teamName": "Red Lions", "shortCode": "RDL", "primaryColor": "#CC0000", "secondaryColor": "#FFFFFF"},
    {"teamId": "BLU", "teamName": "Blue Sharks", "shortCode": "BLS"}
  ],
  "players": [
    {"playerId": "R1", "playerName": "Rio", "jerseyNumber": 1, "role": "gk", "interceptRadiusMeters": 2.0, "teamId": "RED"},
    {"playerId": "R2", "playerName": "Rex", "jerseyNumber": 9, "role": " Fwd ", "teamId": "RED"},
    {"playerId": "B1", "playerName": "", "jerseyNumber": 120, "role": "DEF", "interceptRadiusMeters": -1, "teamId": "BLU"},
    {"playerId": "X1", "playerName": "Ghost", "jerseyNumber": 7, "role": "MID", "teamId": "NOPE"}
  ]
}`

// SampleRosterYAML is SampleRosterJSON without the dangling player.
const SampleRosterYAML = `teams:
  - teamId: RED
    teamName: Red Lions
    shortCode: RDL
  - teamId: BLU
    teamName: Blue Sharks
    shortCode: BLS
players:
  - playerId: R1
    playerName: Rio
    jerseyNumber: 1
    role: GK
    teamId: RED
  - playerId: B1
    playerName: Bo
    jerseyNumber: 4
    role: midfielder
    interceptRadiusMeters: 1.5
    teamId: BLU
`
