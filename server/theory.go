package server

// Theory 物理背景说明，前端点击按钮后显示
const Theory = `**Physical background**

The model is based on **Newton's law of cooling**: the rate of change of an object's
temperature is proportional to the difference between its current temperature and the
ambient temperature.

    dT(t)/dt = -k * (T(t) - T_ambient)

- T(t) is the temperature of the beverage at time t.
- T_ambient is the constant ambient temperature.
- k is the cooling or warming constant.

Solving the differential equation gives

    T(t) = T_ambient + (T_start - T_ambient) * e^(-k*t)

**Heat transfer coefficient**

The effective heat transfer coefficient h_total accounts for conduction through the
vessel wall and convection on both the inner and the outer side of the vessel.

    1/h_total = 1/h_inner + d/k_material + 1/h_outer

- h_inner is the coefficient between beverage and vessel wall.
- h_outer is the coefficient between the outer wall and the surroundings.
- d is the wall thickness.
- k_material is the thermal conductivity of the vessel material.

When k is derived, k = h_total * A / (m * c) with surface area A, mass m and specific
heat capacity c.
`
